// Package jet provides a typed client for the Jet merchant API. Requests are
// authenticated with a cached bearer credential that is refreshed
// transparently, and failures are reported through a small set of typed
// errors (see errors.go).
package jet

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the production merchant API origin.
	DefaultBaseURL = "https://merchant-api.jet.com/api"

	defaultHTTPTimeout = 30 * time.Second
	tracerName         = "github.com/donaldgifford/jet-merchant/internal/jet"
)

// Options holds the account values a Client is constructed with. They are
// immutable for the lifetime of the Client.
type Options struct {
	APIUser    string
	Secret     string
	MerchantID string
}

// MerchantClient defines the merchant API operations used by the rest of the
// module.
type MerchantClient interface {
	GetOrders(ctx context.Context, status OrderStatus) (*OrderURLs, error)
	GetOrderDetail(ctx context.Context, orderURL string) (*Order, error)
	AcknowledgeOrder(ctx context.Context, orderID string, ack *AcknowledgeOrderRequest) error
	ShipOrder(ctx context.Context, orderID string, ship *ShipOrderRequest) error
	GetInventory(ctx context.Context, sku string) (*Inventory, error)
	UpdateInventory(ctx context.Context, sku string, inv *Inventory) error
	GetPrice(ctx context.Context, sku string) (*Price, error)
	UpdatePrice(ctx context.Context, sku string, price *Price) error
}

// CredentialSource hands out a bearer credential that is valid for at least
// the refresh skew.
type CredentialSource interface {
	Credential(ctx context.Context) (Credential, error)
}

// Client is the authenticated merchant API client. It is safe for
// concurrent use.
type Client struct {
	opts        Options
	baseURL     string
	credentials CredentialSource
	client      *http.Client
	throttle    *Throttle
	timeout     time.Duration
	log         *slog.Logger
	tracer      trace.Tracer
	nowFunc     func() time.Time
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the API origin. Mainly used to point the client at a
// sandbox or a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client. The same client is used
// for token exchange unless WithCredentialSource is also given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithCredentialSource replaces the built-in credential cache.
func WithCredentialSource(src CredentialSource) Option {
	return func(c *Client) {
		c.credentials = src
	}
}

// WithThrottle gates every API call through t.
func WithThrottle(t *Throttle) Option {
	return func(c *Client) {
		c.throttle = t
	}
}

// WithRequestTimeout bounds each API call, including any token exchange it
// triggers. Zero disables the per-call deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithClock overrides the time function handed to the credential cache.
func WithClock(f func() time.Time) Option {
	return func(c *Client) {
		c.nowFunc = f
	}
}

// New creates a Client for the given account.
func New(opts Options, options ...Option) *Client {
	c := &Client{
		opts:    opts,
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Timeout:   defaultHTTPTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log:     slog.Default(),
		tracer:  otel.Tracer(tracerName),
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(c)
	}
	if c.credentials == nil {
		c.credentials = NewCredentialCache(
			opts.APIUser,
			opts.Secret,
			WithTokenURL(c.baseURL+tokenPath),
			WithCacheHTTPClient(c.client),
			WithNowFunc(c.nowFunc),
			WithCacheLogger(c.log),
		)
	}
	return c
}

// MerchantID returns the configured merchant identifier. It is carried for
// callers and is not sent with any request.
func (c *Client) MerchantID() string {
	return c.opts.MerchantID
}

// BaseURL returns the API origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Credentials returns the source the client draws bearer credentials from.
func (c *Client) Credentials() CredentialSource {
	return c.credentials
}

var _ MerchantClient = (*Client)(nil)
