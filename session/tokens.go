package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// tokens is the file backed store for the authorised user's OAuth2 token.
type tokens struct {
	file string
}

func (t tokens) load() (*oauth2.Token, error) {
	f, err := os.Open(t.file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, errors.Wrapf(err, "invalid credentials file %v", t.file)
	}

	return &token, nil
}

func (t tokens) save(token *oauth2.Token) error {
	dir := filepath.Dir(t.file)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := json.NewEncoder(tmp).Encode(token); err != nil {
		return err
	}

	if err := tmp.Chmod(0600); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), t.file)
}

// usable is true for a token that is either still valid or can be refreshed.
func usable(token *oauth2.Token) bool {
	return token != nil && (token.Valid() || token.RefreshToken != "")
}

// persistent writes refreshed tokens back to the credentials file.
type persistent struct {
	sync.Mutex
	store  tokens
	source oauth2.TokenSource
	last   string
}

func (p *persistent) Token() (*oauth2.Token, error) {
	p.Lock()
	defer p.Unlock()

	token, err := p.source.Token()
	if err != nil {
		return nil, err
	}

	if token.AccessToken != p.last {
		if err := p.store.save(token); err != nil {
			return nil, errors.Wrap(err, "error saving refreshed credentials")
		}

		p.last = token.AccessToken
	}

	return token, nil
}
