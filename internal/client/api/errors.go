package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a non-2xx API response. Body is kept verbatim so callers can
// surface the server's own error text.
type Error struct {
	Status int
	Method string
	Path   string
	Body   []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

// Is matches ErrUnauthorized on 401 only: a 403 is a valid session asking
// for something its role may not do.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
