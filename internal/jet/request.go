package jet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/http/httpguts"

	"github.com/donaldgifford/jet-merchant/internal/metrics"
)

// RequestOption customizes an outgoing request after the Authorization
// header has been set and before it is sent.
type RequestOption func(*http.Request) error

// WithJSONBody encodes v as the request body.
func WithJSONBody(v any) RequestOption {
	return func(r *http.Request) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		r.Body = io.NopCloser(bytes.NewReader(data))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		}
		r.ContentLength = int64(len(data))
		r.Header.Set("Content-Type", "application/json")
		return nil
	}
}

// WithQuery merges params into the request URL's query string.
func WithQuery(params url.Values) RequestOption {
	return func(r *http.Request) error {
		q := r.URL.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		r.URL.RawQuery = q.Encode()
		return nil
	}
}

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) error {
		r.Header.Set(key, value)
		return nil
	}
}

// Do performs an authenticated call and decodes a 2xx JSON response into
// dst. A nil dst discards the body.
func (c *Client) Do(
	ctx context.Context,
	method, path string,
	dst any,
	opts ...RequestOption,
) error {
	body, err := c.send(ctx, method, path, opts)
	if err != nil {
		return err
	}
	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// DoNoContent performs an authenticated call whose success response carries
// nothing of interest.
func (c *Client) DoNoContent(
	ctx context.Context,
	method, path string,
	opts ...RequestOption,
) error {
	_, err := c.send(ctx, method, path, opts)
	return err
}

// invalidator is implemented by credential sources that can drop a
// credential the server has stopped accepting.
type invalidator interface {
	Invalidate()
}

func (c *Client) send(
	ctx context.Context,
	method, path string,
	opts []RequestOption,
) (_ []byte, err error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	callID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, "jet "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("jet.path", path),
			attribute.String("jet.call_id", callID),
		),
	)
	start := time.Now()
	status := "error"
	defer func() {
		metrics.APIRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
		metrics.APIRequestsTotal.WithLabelValues(method, status).Inc()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			c.log.Debug("jet call failed",
				"method", method,
				"path", path,
				"call_id", callID,
				"err", err,
			)
		}
		span.End()
	}()

	if c.throttle != nil {
		if err := c.throttle.Acquire(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.DailyLimitHitsTotal.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.DailyUsage.Set(float64(c.throttle.Used()))
	}

	cred, err := c.credentials.Credential(ctx)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, method, path, cred)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(req); err != nil {
			return nil, err
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &IOError{Err: err}
	}

	if !isSuccess(resp.StatusCode) {
		if resp.StatusCode == http.StatusUnauthorized {
			if inv, ok := c.credentials.(invalidator); ok {
				inv.Invalidate()
			}
		}
		return nil, &RequestError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	cred Credential,
) (*http.Request, error) {
	if cred.Token == "" || !httpguts.ValidHeaderFieldValue(cred.Token) {
		return nil, ErrInvalidCredential
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+cred.Token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// resolve joins path onto the API origin. Absolute URLs, as the API
// sometimes returns for follow-up resources, are used verbatim.
func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "http://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
