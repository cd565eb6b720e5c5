package jet

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidCredential is returned when a credential's token cannot be
// carried in an Authorization header.
var ErrInvalidCredential = errors.New("invalid bearer credential")

// TokenRequestError is returned when the token endpoint answers with a
// non-2xx status. Body is the raw response text.
type TokenRequestError struct {
	StatusCode int
	Body       string
}

func (e *TokenRequestError) Error() string {
	return fmt.Sprintf("token request failed (status %d): %s", e.StatusCode, e.Body)
}

// RequestError is returned when an API call answers with a non-2xx status.
type RequestError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf(
		"request %s failed (status %d): %s",
		e.Path,
		e.StatusCode,
		e.Body,
	)
}

// DecodeError is returned when a response body is not the expected JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "parsing response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError wraps a failure from the HTTP transport (DNS, TCP, TLS,
// timeout, cancellation). The underlying error is reachable with errors.Is
// and errors.As.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "executing request: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// IOError wraps a failure reading a response body.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return "reading response body: " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// StatusCode reports the HTTP status carried by err, if it is (or wraps) a
// TokenRequestError or RequestError.
func StatusCode(err error) (int, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode, true
	}
	var tokErr *TokenRequestError
	if errors.As(err, &tokErr) {
		return tokErr.StatusCode, true
	}
	return 0, false
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
