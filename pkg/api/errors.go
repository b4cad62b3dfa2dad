package api

import (
	"errors"
	"net/http"
)

// ErrUnauthorized marks a 401 from the backend. The client fires its
// OnUnauthorized hook before returning it, so callers only need to stop.
var ErrUnauthorized = errors.New("api: unauthorized")

// HTTPError exposes the status code behind an error.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError wraps a non-2xx backend response.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	var httpErr HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode() == code
}
