// Package gammasdk is the root entry point of the Gamma SDK. It aggregates
// the service clients behind one configuration; Gamma is the only service
// today, and the layout leaves room for more.
package gammasdk

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/GoPolymarket/gamma-go-sdk/pkg/gamma"
	"github.com/GoPolymarket/gamma-go-sdk/pkg/transport"
)

// Client aggregates service clients behind a shared configuration.
type Client struct {
	Config Config

	Gamma gamma.Client

	InitErrors []error
}

// InitError records a client initialization failure for a sub-service.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s client: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewClient creates a new root client with optional overrides. Initialization
// failures are collected in InitErrors instead of being returned; use
// NewClientE to fail fast.
func NewClient(opts ...Option) *Client {
	c, _ := newClient(false, opts...)
	return c
}

// NewClientE creates a new root client and returns an aggregated error if any
// sub-client fails to initialize.
func NewClientE(opts ...Option) (*Client, error) {
	return newClient(true, opts...)
}

func newClient(strict bool, opts ...Option) (*Client, error) {
	// 1. Initialize with default configuration
	c := &Client{Config: DefaultConfig()}

	// 2. Apply Options (Config overrides)
	for _, opt := range opts {
		opt(c)
	}

	// 3. Ensure a default HTTP client with timeout if none was provided.
	if c.Config.HTTPClient == nil && c.Config.Timeout > 0 {
		c.Config.HTTPClient = &http.Client{Timeout: c.Config.Timeout}
	}

	// 4. Initialize default transports and clients (if not overridden)
	if c.Gamma == nil {
		gammaTransport, err := transport.New(
			c.Config.HTTPClient,
			c.Config.BaseURLs.Gamma,
			transport.WithUserAgent(c.Config.UserAgent),
		)
		if err != nil {
			c.InitErrors = append(c.InitErrors, &InitError{Component: "gamma", Err: err})
		} else {
			c.Gamma = gamma.NewClient(gammaTransport)
		}
	}

	if strict && len(c.InitErrors) > 0 {
		return c, errors.Join(c.InitErrors...)
	}
	return c, nil
}
