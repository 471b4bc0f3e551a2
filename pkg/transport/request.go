package transport

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	sdkerrors "github.com/GoPolymarket/gamma-go-sdk/pkg/errors"
)

// Request describes a single not-yet-sent API call. A Request is built fresh
// per call and never reused.
type Request struct {
	// Method is the HTTP method; empty means GET.
	Method string

	// Path is the resource path relative to the client's base URL, starting
	// with "/". Path-embedded identifiers must already be escaped; build such
	// paths with JoinPath.
	Path string

	// Query is encoded onto the URL (keys sorted) when non-empty.
	Query url.Values

	// Headers, when non-nil, replaces the client's default headers in full.
	// There is no merging: a header absent here is absent from the request,
	// including User-Agent.
	Headers http.Header
}

// JoinPath assembles a resource path from fixed segments and caller-supplied
// identifiers, percent-encoding every segment so values containing "/", "?",
// or spaces cannot break out of their position.
func JoinPath(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// newHTTPRequest materializes r against the client's base URL and headers.
func (c *Client) newHTTPRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL.String() + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, &sdkerrors.TransportError{Method: method, Path: r.Path, Err: err}
	}

	if r.Headers != nil {
		req.Header = r.Headers.Clone()
	} else {
		req.Header = c.headers.Clone()
	}
	return req, nil
}
