package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Consent obtains a user token by running the interactive OAuth2 authorization-code flow.
// Every implementation blocks until the user has granted (or refused) access and is
// therefore unsuitable for unattended use.
type Consent interface {
	Token(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error)
}

// Prompt displays the consent URL and reads the authorization code pasted by the user.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

func (p Prompt) Token(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	url := config.AuthCodeURL(uuid.NewString(), oauth2.AccessTypeOffline)

	fmt.Fprintf(p.Out, "Go to the following link in your browser then type the authorization code:\n%v\n\n", url)

	code, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && code != "") {
		return nil, errors.Wrap(err, "unable to read authorization code")
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("blank authorization code")
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "unable to retrieve token from web")
	}

	return token, nil
}

// Loopback runs a local HTTP server to receive the OAuth2 redirect, opens the consent page
// in the user's browser and waits for the authorization code. Address defaults to
// 127.0.0.1:0 (any free port). Browser defaults to the platform 'open' command.
type Loopback struct {
	Address string
	Browser func(url string) error
}

func (l Loopback) Token(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	address := l.Address
	if address == "" {
		address = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	port := listener.Addr().(*net.TCPAddr).Port
	state := uuid.NewString()

	cfg := *config
	cfg.RedirectURL = fmt.Sprintf("http://localhost:%d/", port)

	codes := make(chan string, 1)
	failed := make(chan error, 1)

	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, rq *http.Request) {
		if rq.FormValue("state") != state {
			http.Error(w, "Invalid state token", http.StatusBadRequest)
			return
		}

		if reason := rq.FormValue("error"); reason != "" {
			http.Error(w, fmt.Sprintf("Authorisation refused (%v)", reason), http.StatusForbidden)
			select {
			case failed <- fmt.Errorf("authorisation refused (%v)", reason):
			default:
			}
			return
		}

		code := rq.FormValue("code")
		if code == "" {
			http.Error(w, "Missing authorization code", http.StatusBadRequest)
			return
		}

		fmt.Fprintln(w, "Authorisation complete - you can close this window")

		select {
		case codes <- code:
		default:
		}
	}).Methods(http.MethodGet)

	srv := &http.Server{
		Handler: router,
	}

	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			select {
			case failed <- err:
			default:
			}
		}
	}()

	defer srv.Shutdown(context.Background())

	url := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
	browser := l.Browser
	if browser == nil {
		browser = browse
	}

	if err := browser(url); err != nil {
		fmt.Printf("Could not open the authorisation page in your browser - please open\n  %v\nmanually\n", url)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()

	case err := <-failed:
		return nil, err

	case code := <-codes:
		token, err := cfg.Exchange(ctx, code)
		if err != nil {
			return nil, errors.Wrap(err, "unable to retrieve token from web")
		}

		return token, nil
	}
}
