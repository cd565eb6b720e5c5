package jet_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/jet-merchant/internal/jet"
)

func TestStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOK   bool
		notFound bool
	}{
		{
			name:     "request error",
			err:      &jet.RequestError{Path: "/x", StatusCode: http.StatusNotFound},
			wantCode: http.StatusNotFound,
			wantOK:   true,
			notFound: true,
		},
		{
			name:     "wrapped request error",
			err:      fmt.Errorf("listing: %w", &jet.RequestError{StatusCode: http.StatusBadGateway}),
			wantCode: http.StatusBadGateway,
			wantOK:   true,
		},
		{
			name:     "token request error",
			err:      &jet.TokenRequestError{StatusCode: http.StatusUnauthorized},
			wantCode: http.StatusUnauthorized,
			wantOK:   true,
		},
		{
			name: "transport error",
			err:  &jet.TransportError{Err: errors.New("dial tcp: refused")},
		},
		{
			name: "nil",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, ok := jet.StatusCode(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.notFound, jet.IsNotFound(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{
			err:  &jet.TokenRequestError{StatusCode: 401, Body: "denied"},
			want: "token request failed (status 401): denied",
		},
		{
			err:  &jet.RequestError{Path: "/orders/ready", StatusCode: 500, Body: "boom"},
			want: "request /orders/ready failed (status 500): boom",
		},
		{
			err:  &jet.DecodeError{Err: errors.New("unexpected end of JSON input")},
			want: "parsing response: unexpected end of JSON input",
		},
		{
			err:  &jet.TransportError{Err: errors.New("connection refused")},
			want: "executing request: connection refused",
		},
		{
			err:  &jet.IOError{Err: io.ErrUnexpectedEOF},
			want: "reading response body: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.EqualError(t, tt.err, tt.want)
		})
	}

	assert.ErrorIs(t, &jet.IOError{Err: io.ErrUnexpectedEOF}, io.ErrUnexpectedEOF)
}
