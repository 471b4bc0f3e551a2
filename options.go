package gammasdk

import (
	"time"

	"github.com/GoPolymarket/gamma-go-sdk/pkg/gamma"
	"github.com/GoPolymarket/gamma-go-sdk/pkg/transport"
)

// Option overrides part of the root client configuration.
type Option func(*Client)

// WithConfig replaces the whole configuration. Apply it before other options
// or it overwrites them.
func WithConfig(cfg Config) Option {
	return func(c *Client) { c.Config = cfg }
}

// WithHTTPClient sets the HTTP client used by all service transports. Any
// Doer works: a plain *http.Client, a retrying wrapper, or a test fake.
func WithHTTPClient(doer transport.Doer) Option {
	return func(c *Client) { c.Config.HTTPClient = doer }
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.Config.UserAgent = ua }
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// when WithHTTPClient supplies a custom client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.Config.Timeout = d }
}

// WithGammaURL points the Gamma service client at an alternate endpoint.
func WithGammaURL(u string) Option {
	return func(c *Client) { c.Config.BaseURLs.Gamma = u }
}

// WithGamma injects a pre-built Gamma client, bypassing default transport
// construction.
func WithGamma(g gamma.Client) Option {
	return func(c *Client) { c.Gamma = g }
}
