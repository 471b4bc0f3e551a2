// Package transport implements the HTTP layer shared by the Gamma service
// clients: a client bound to a fixed base URL with fixed default headers, and
// a generic request pipeline that maps every outcome into the typed errors of
// pkg/errors.
package transport

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	sdkerrors "github.com/GoPolymarket/gamma-go-sdk/pkg/errors"
	"github.com/GoPolymarket/gamma-go-sdk/pkg/logger"
)

// DefaultUserAgent identifies the SDK to the Gamma service.
const DefaultUserAgent = "github.com/GoPolymarket/gamma-go-sdk"

// Doer executes HTTP requests. *http.Client satisfies it; callers may
// substitute retrying clients, recorders, or test fakes.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client executes requests against a fixed base URL with a fixed set of
// default headers. It is immutable after construction and safe for concurrent
// use; shared handles reuse the underlying connection pool.
type Client struct {
	doer    Doer
	baseURL *url.URL
	headers http.Header
	log     *zap.SugaredLogger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.headers.Set("User-Agent", ua) }
}

// WithDefaultHeader adds a header sent with every request.
func WithDefaultHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithLogger routes per-request diagnostics to log instead of the package
// logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client bound to baseURL, which must be an absolute URL;
// anything else fails with a *errors.ConfigurationError. A trailing slash is
// trimmed. A nil doer falls back to http.DefaultClient. Construction never
// touches the network.
func New(doer Doer, baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, &sdkerrors.ConfigurationError{Field: "base url", Reason: err.Error()}
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, &sdkerrors.ConfigurationError{
			Field:  "base url",
			Reason: fmt.Sprintf("%q is not an absolute URL", baseURL),
		}
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = strings.TrimSuffix(u.RawPath, "/")

	c := &Client{
		doer:    doer,
		baseURL: u,
		headers: defaultHeaders(),
	}
	if c.doer == nil {
		c.doer = http.DefaultClient
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is New for base URLs known to be valid, such as the production
// endpoints in DefaultConfig. It panics on a malformed URL.
func MustNew(doer Doer, baseURL string, opts ...Option) *Client {
	c, err := New(doer, baseURL, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Host returns the normalized base URL.
func (c *Client) Host() string {
	return c.baseURL.String()
}

func defaultHeaders() http.Header {
	h := make(http.Header)
	h.Set("User-Agent", DefaultUserAgent)
	h.Set("Accept", "*/*")
	h.Set("Connection", "keep-alive")
	h.Set("Content-Type", "application/json")
	return h
}

// logger returns the client's logger, falling back to the package logger so a
// late logger.Init takes effect without rebuilding clients.
func (c *Client) logger() *zap.SugaredLogger {
	if c.log != nil {
		return c.log
	}
	return logger.L()
}
