package transport

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/GoPolymarket/gamma-go-sdk/pkg/errors"
)

func TestNew_ValidURLs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		host string
	}{
		{"bare host", "https://gamma-api.polymarket.com", "https://gamma-api.polymarket.com"},
		{"trailing slash", "https://gamma-api.polymarket.com/", "https://gamma-api.polymarket.com"},
		{"with port", "http://localhost:8080", "http://localhost:8080"},
		{"with path", "https://example.com/v2/", "https://example.com/v2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(nil, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.host, c.Host())
		})
	}
}

func TestNew_InvalidURLs(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"relative path", "/just/a/path"},
		{"missing scheme", "gamma-api.polymarket.com"},
		{"scheme only", "https://"},
		{"unparseable", "://gamma"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil, tt.in)
			require.Error(t, err)
			var ce *sdkerrors.ConfigurationError
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestMustNew(t *testing.T) {
	assert.NotNil(t, MustNew(nil, "https://gamma-api.polymarket.com"))
	assert.Panics(t, func() { MustNew(nil, "not a url") })
}

func TestDefaultHeaders(t *testing.T) {
	c, err := New(nil, "https://example.com")
	require.NoError(t, err)

	req, err := c.newHTTPRequest(context.Background(), Request{Path: "/tags"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, DefaultUserAgent, req.Header.Get("User-Agent"))
	assert.Equal(t, "*/*", req.Header.Get("Accept"))
	assert.Equal(t, "keep-alive", req.Header.Get("Connection"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestWithUserAgent(t *testing.T) {
	c, err := New(nil, "https://example.com", WithUserAgent("my-bot/1.0"))
	require.NoError(t, err)

	req, err := c.newHTTPRequest(context.Background(), Request{Path: "/tags"})
	require.NoError(t, err)
	assert.Equal(t, "my-bot/1.0", req.Header.Get("User-Agent"))
}

func TestWithDefaultHeader(t *testing.T) {
	c, err := New(nil, "https://example.com", WithDefaultHeader("X-Api-Key", "k"))
	require.NoError(t, err)

	req, err := c.newHTTPRequest(context.Background(), Request{Path: "/tags"})
	require.NoError(t, err)
	assert.Equal(t, "k", req.Header.Get("X-Api-Key"))
	assert.Equal(t, DefaultUserAgent, req.Header.Get("User-Agent"))
}

func TestHeaderOverrideReplacesAll(t *testing.T) {
	c, err := New(nil, "https://example.com")
	require.NoError(t, err)

	h := make(http.Header)
	h.Set("X-Custom", "1")
	req, err := c.newHTTPRequest(context.Background(), Request{Path: "/tags", Headers: h})
	require.NoError(t, err)

	assert.Equal(t, "1", req.Header.Get("X-Custom"))
	assert.Empty(t, req.Header.Get("User-Agent"))
	assert.Empty(t, req.Header.Get("Accept"))
	assert.Empty(t, req.Header.Get("Content-Type"))
}

func TestHeaderOverrideEmptySet(t *testing.T) {
	c, err := New(nil, "https://example.com")
	require.NoError(t, err)

	req, err := c.newHTTPRequest(context.Background(), Request{Path: "/tags", Headers: make(http.Header)})
	require.NoError(t, err)
	assert.Empty(t, req.Header.Get("User-Agent"))
}

func TestQueryEncoding(t *testing.T) {
	c, err := New(nil, "https://example.com")
	require.NoError(t, err)

	q := url.Values{}
	q.Set("limit", "10")
	q.Set("ascending", "true")
	req, err := c.newHTTPRequest(context.Background(), Request{Path: "/tags", Query: q})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/tags?ascending=true&limit=10", req.URL.String())
}

func TestBasePathJoining(t *testing.T) {
	c, err := New(nil, "https://example.com/v2/")
	require.NoError(t, err)

	req, err := c.newHTTPRequest(context.Background(), Request{Path: "/tags/42"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/v2/tags/42", req.URL.String())
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"numeric id", []string{"tags", "42"}, "/tags/42"},
		{"slug", []string{"tags", "slug", "politics"}, "/tags/slug/politics"},
		{"nested", []string{"tags", "slug", "politics", "related-tags", "tags"}, "/tags/slug/politics/related-tags/tags"},
		{"embedded slash", []string{"tags", "slug", "a/b"}, "/tags/slug/a%2Fb"},
		{"space", []string{"tags", "slug", "hello world"}, "/tags/slug/hello%20world"},
		{"question mark", []string{"tags", "slug", "a?b"}, "/tags/slug/a%3Fb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinPath(tt.segments...))
		})
	}
}
