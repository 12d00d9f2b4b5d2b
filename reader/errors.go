package reader

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

var (
	ErrAuth                = errors.New("authorisation error")
	ErrNotFound            = errors.New("sheet not found")
	ErrIndexOutOfRange     = errors.New("sheet index out of range")
	ErrInvalidArgumentType = errors.New("invalid sheet selector type")
	ErrTransport           = errors.New("transport error")
)

// AuthError indicates that no valid credential could be obtained.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%v (%v)", ErrAuth, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

// NotFoundError is returned for a sheet name that is not in the spreadsheet. Available lists
// the sheets that are.
type NotFoundError struct {
	Sheet     string
	Available []string
}

func (e *NotFoundError) Error() string {
	quoted := make([]string, len(e.Available))
	for i, name := range e.Available {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	return fmt.Sprintf("sheet '%s' not found - available sheets are: [%s]", e.Sheet, strings.Join(quoted, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IndexOutOfRangeError is returned for a sheet position outside [0, Count).
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("sheet index %d out of range - spreadsheet has %d sheets", e.Index, e.Count)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// TransportError wraps a failed remote call. Op names the call.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failed (%v)", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// StatusCode returns the HTTP status of the underlying Google API error, or 0 if the call
// failed before a response was received.
func (e *TransportError) StatusCode() int {
	var gerr *googleapi.Error
	if errors.As(e.Err, &gerr) {
		return gerr.Code
	}

	return 0
}
