package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sheets2table/sheets2table/session"
)

const APP = "sheets2table"

// Options holds the global command line options.
type Options struct {
	Debug bool
}

type command struct {
	clientSecret string
	credentials  string
	debug        bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.clientSecret, "client-secret", c.clientSecret, fmt.Sprintf("OAuth2 client secret file. Defaults to $%v or %v", session.EnvClientSecret, session.DefaultClientSecret))
	flagset.StringVar(&c.credentials, "credentials", c.credentials, fmt.Sprintf("Authorised user credentials file. Defaults to $%v or %v", session.EnvCredentials, session.DefaultCredentials))

	return flagset
}

func (c *command) config() session.Config {
	config := session.NewConfig(c.clientSecret, c.credentials)

	if c.debug {
		debugf("client secret: %v", config.ClientSecret)
		debugf("credentials:   %v", config.Credentials)
	}

	return config
}

// spreadsheet is embedded by the commands that operate on a single spreadsheet.
type spreadsheet struct {
	url string
	id  string
}

func (s *spreadsheet) flags(flagset *flag.FlagSet) {
	flagset.StringVar(&s.url, "url", s.url, "Spreadsheet URL")
	flagset.StringVar(&s.id, "id", s.id, "Spreadsheet ID (alternative to --url)")
}

func (s *spreadsheet) spreadsheetID() (string, error) {
	url := strings.TrimSpace(s.url)
	id := strings.TrimSpace(s.id)

	switch {
	case url == "" && id == "":
		return "", fmt.Errorf("--url or --id is a required option")

	case url != "" && id != "":
		return "", fmt.Errorf("--url and --id are mutually exclusive")

	case id != "":
		return id, nil
	}

	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(url)
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

// interruptible returns a context that is cancelled by CTRL-C.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// write creates the file through a temporary file in the same directory, renamed on success.
func write(file string, f func(io.Writer) error) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".sheets2table-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := f(tmp); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-14s %s\n", f.Name, f.Usage)
	})

	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Global options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-14s %s\n", f.Name, f.Usage)
		})
	}
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
