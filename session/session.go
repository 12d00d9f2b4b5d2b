package session

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/sheets2table/sheets2table/reader"
)

const (
	infoFields = "spreadsheetId,properties/title,sheets/properties(sheetId,title,index)"
	dataFields = "spreadsheetId,sheets(properties(sheetId,title,index),data(rowData(values(effectiveValue,effectiveFormat/numberFormat))))"
)

// Session is an authorised Google Sheets client. A Session can be reused for sequential
// requests but is not intended for concurrent use.
type Session struct {
	service *sheets.Service
	limiter *rate.Limiter
}

// Obtain returns a Session using the credentials persisted in config.Credentials. If the
// credentials are missing or can no longer be refreshed, the consent flow is run to obtain
// new credentials which are then persisted. A nil consent fails with an AuthError instead,
// for unattended use.
func Obtain(ctx context.Context, config Config, consent Consent) (*Session, error) {
	oauth, err := oauthConfig(config.ClientSecret)
	if err != nil {
		return nil, &reader.AuthError{Err: err}
	}

	store := tokens{file: config.Credentials}

	token, err := store.load()
	if err != nil || !usable(token) {
		if consent == nil {
			return nil, &reader.AuthError{
				Err: errors.Errorf("no valid credentials in %v - authorise access to Google Sheets first", config.Credentials),
			}
		}

		if token, err = authorise(ctx, oauth, store, consent); err != nil {
			return nil, err
		}
	}

	return open(ctx, config, oauth, store, token)
}

// Authorise runs the consent flow unconditionally and persists the resulting credentials.
func Authorise(ctx context.Context, config Config, consent Consent) error {
	if consent == nil {
		return &reader.AuthError{Err: errors.New("missing consent flow")}
	}

	oauth, err := oauthConfig(config.ClientSecret)
	if err != nil {
		return &reader.AuthError{Err: err}
	}

	_, err = authorise(ctx, oauth, tokens{file: config.Credentials}, consent)

	return err
}

// Info retrieves the spreadsheet properties and the sheet properties, without cell data.
func (s *Session) Info(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	response, err := s.service.Spreadsheets.Get(spreadsheetID).
		Fields(infoFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("get spreadsheet info", err)
	}

	return response, nil
}

// Fetch retrieves the effective value and number format of every cell of the named sheets,
// or of all sheets if no names are given.
func (s *Session) Fetch(ctx context.Context, spreadsheetID string, names ...string) (*sheets.Spreadsheet, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	call := s.service.Spreadsheets.Get(spreadsheetID).
		IncludeGridData(true).
		Fields(dataFields).
		Context(ctx)

	if len(names) > 0 {
		ranges := make([]string, len(names))
		for i, name := range names {
			ranges[i] = quote(name)
		}

		call = call.Ranges(ranges...)
	}

	response, err := call.Do()
	if err != nil {
		return nil, classify("get spreadsheet data", err)
	}

	return response, nil
}

func (s *Session) wait(ctx context.Context) error {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return &reader.TransportError{Op: "rate limit", Err: err}
		}
	}

	return nil
}

func oauthConfig(secret string) (*oauth2.Config, error) {
	b, err := os.ReadFile(secret)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read client secret file")
	}

	config, err := google.ConfigFromJSON(b, Scope)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse client secret file %v", secret)
	}

	return config, nil
}

func authorise(ctx context.Context, oauth *oauth2.Config, store tokens, consent Consent) (*oauth2.Token, error) {
	token, err := consent.Token(ctx, oauth)
	if err != nil {
		return nil, &reader.AuthError{Err: err}
	} else if token == nil {
		return nil, &reader.AuthError{Err: errors.New("no token returned from consent flow")}
	}

	if err := store.save(token); err != nil {
		return nil, &reader.AuthError{Err: errors.Wrapf(err, "unable to save credentials to %v", store.file)}
	}

	return token, nil
}

func open(ctx context.Context, config Config, oauth *oauth2.Config, store tokens, token *oauth2.Token) (*Session, error) {
	source := &persistent{
		store:  store,
		source: oauth.TokenSource(ctx, token),
		last:   token.AccessToken,
	}

	options := append([]option.ClientOption{
		option.WithHTTPClient(oauth2.NewClient(ctx, source)),
	}, config.options...)

	service, err := sheets.NewService(ctx, options...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create new Sheets client")
	}

	s := Session{
		service: service,
	}

	if config.QueriesPerMinute > 0 {
		burst := config.Burst
		if burst < 1 {
			burst = 1
		}

		s.limiter = rate.NewLimiter(rate.Limit(float64(config.QueriesPerMinute)/60), burst)
	}

	return &s, nil
}

// classify maps a failed API call to an AuthError (the token could not be refreshed or
// was rejected) or a TransportError.
func classify(op string, err error) error {
	var retrieve *oauth2.RetrieveError
	if errors.As(err, &retrieve) {
		return &reader.AuthError{Err: err}
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == 401 {
		return &reader.AuthError{Err: err}
	}

	return &reader.TransportError{Op: op, Err: err}
}

// quote returns the A1 notation range for an entire sheet.
func quote(sheet string) string {
	escaped := ""
	for _, ch := range sheet {
		if ch == '\'' {
			escaped += "''"
		} else {
			escaped += string(ch)
		}
	}

	return "'" + escaped + "'"
}
