package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	EnvClientSecret = "CLIENT_SECRET_PATH"
	EnvCredentials  = "CLIENT_CREDENTIALS_PATH"

	DefaultClientSecret = "~/.gsheets2pandas/client_secret.json"
	DefaultCredentials  = "~/.gsheets2pandas/client_credentials.json"

	// Scope is the (fixed) read-only access requested for the authorised user.
	Scope = sheets.SpreadsheetsReadonlyScope
)

// Config holds the resolved locations of the OAuth2 client secret and of the persisted user
// credentials, plus the optional client side request rate limit. A zero QueriesPerMinute
// disables rate limiting.
type Config struct {
	ClientSecret     string
	Credentials      string
	QueriesPerMinute int
	Burst            int

	options []option.ClientOption
}

// NewConfig resolves the client secret and credentials file paths. Explicit (non-blank)
// arguments take precedence over the CLIENT_SECRET_PATH and CLIENT_CREDENTIALS_PATH
// environment variables which take precedence over the defaults. A leading ~ is expanded
// to the user's home directory.
func NewConfig(secret, credentials string) Config {
	v := viper.New()

	v.SetDefault(EnvClientSecret, DefaultClientSecret)
	v.SetDefault(EnvCredentials, DefaultCredentials)
	v.AutomaticEnv()

	if strings.TrimSpace(secret) == "" {
		secret = v.GetString(EnvClientSecret)
	}

	if strings.TrimSpace(credentials) == "" {
		credentials = v.GetString(EnvCredentials)
	}

	return Config{
		ClientSecret: expand(secret),
		Credentials:  expand(credentials),
	}
}

// WithClientOptions returns a copy of the configuration that passes additional options to
// the Sheets API client e.g. an alternative endpoint.
func (c Config) WithClientOptions(options ...option.ClientOption) Config {
	c.options = append(append([]option.ClientOption{}, c.options...), options...)

	return c
}

func expand(path string) string {
	path = strings.TrimSpace(path)

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}

	return path
}
