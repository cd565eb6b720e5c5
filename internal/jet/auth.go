package jet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/donaldgifford/jet-merchant/internal/metrics"
)

const (
	tokenPath = "/token"

	// refreshSkew is subtracted from a credential's expiry when deciding
	// whether it is still usable, so a request never goes out with a token
	// that lapses mid-flight.
	refreshSkew = 15 * time.Minute
)

// Credential is a bearer token issued by the token endpoint. It is replaced
// wholesale on refresh and never mutated in place.
type Credential struct {
	Token     string    `json:"id_token"`
	TokenType string    `json:"token_type"`
	ExpiresOn time.Time `json:"expires_on"`
}

// ValidAt reports whether the credential may still be used at now.
func (c Credential) ValidAt(now time.Time) bool {
	return c.Token != "" && now.Before(c.ExpiresOn.Add(-refreshSkew))
}

// CredentialCache implements CredentialSource by exchanging the account's
// user and secret at the token endpoint and caching the result until it is
// within refreshSkew of expiry. Thread-safe via mutex; concurrent callers
// are serialized while a refresh is in flight.
type CredentialCache struct {
	user     string
	pass     string
	tokenURL string
	client   *http.Client
	log      *slog.Logger

	mu      sync.Mutex
	cred    *Credential
	nowFunc func() time.Time // for testing
}

// CacheOption configures the CredentialCache.
type CacheOption func(*CredentialCache)

// WithTokenURL overrides the token endpoint.
func WithTokenURL(u string) CacheOption {
	return func(c *CredentialCache) {
		c.tokenURL = u
	}
}

// WithCacheHTTPClient overrides the default HTTP client.
func WithCacheHTTPClient(hc *http.Client) CacheOption {
	return func(c *CredentialCache) {
		c.client = hc
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) CacheOption {
	return func(c *CredentialCache) {
		c.nowFunc = f
	}
}

// WithCacheLogger sets the logger.
func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *CredentialCache) {
		c.log = l
	}
}

// NewCredentialCache creates a cache for the given API user and secret.
func NewCredentialCache(user, secret string, opts ...CacheOption) *CredentialCache {
	c := &CredentialCache{
		user:     user,
		pass:     secret,
		tokenURL: DefaultBaseURL + tokenPath,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      slog.Default(),
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithCredential calls use with a valid credential, exchanging a new one
// first when the slot is empty or stale. The lock is held until use
// returns, so use must not call back into the cache.
func (c *CredentialCache) WithCredential(
	ctx context.Context,
	use func(Credential) error,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cred == nil || !c.cred.ValidAt(c.nowFunc()) {
		cred, err := c.exchangeLocked(ctx)
		if err != nil {
			return err
		}
		c.cred = &cred
	}

	return use(*c.cred)
}

// Credential returns a copy of a valid credential. The lock is released
// before the caller uses it.
func (c *CredentialCache) Credential(ctx context.Context) (Credential, error) {
	var out Credential
	err := c.WithCredential(ctx, func(cred Credential) error {
		out = cred
		return nil
	})
	return out, err
}

// Invalidate drops the cached credential; the next access exchanges a new
// one.
func (c *CredentialCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cred = nil
}

type tokenRequest struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

func (c *CredentialCache) exchangeLocked(ctx context.Context) (Credential, error) {
	cred, err := c.exchange(ctx)
	if err != nil {
		metrics.TokenExchangesTotal.WithLabelValues("error").Inc()
		c.log.Warn("token exchange failed", "err", err)
		return Credential{}, err
	}

	metrics.TokenExchangesTotal.WithLabelValues("success").Inc()
	c.log.Info("token refreshed",
		"token_type", cred.TokenType,
		"expires_on", cred.ExpiresOn,
	)
	return cred, nil
}

func (c *CredentialCache) exchange(ctx context.Context) (Credential, error) {
	payload, err := json.Marshal(tokenRequest{User: c.user, Pass: c.pass})
	if err != nil {
		return Credential{}, fmt.Errorf("marshaling token request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.tokenURL,
		bytes.NewReader(payload),
	)
	if err != nil {
		return Credential{}, fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Credential{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Credential{}, &IOError{Err: err}
	}

	if !isSuccess(resp.StatusCode) {
		return Credential{}, &TokenRequestError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var cred Credential
	if err := json.Unmarshal(body, &cred); err != nil {
		return Credential{}, &DecodeError{Err: err}
	}
	if cred.Token == "" {
		return Credential{}, &DecodeError{Err: errors.New("token response has no id_token")}
	}

	return cred, nil
}
