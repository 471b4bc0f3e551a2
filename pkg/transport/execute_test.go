package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/GoPolymarket/gamma-go-sdk/pkg/errors"
)

type tagFixture struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type failingDoer struct{ err error }

func (d *failingDoer) Do(*http.Request) (*http.Response, error) { return nil, d.err }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.Client(), srv.URL)
	require.NoError(t, err)
	return c
}

func TestExecute_DecodesValue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tags/42", r.URL.Path)
		fmt.Fprint(w, `{"id":"42","label":"Politics"}`)
	})

	tag, err := Execute[tagFixture](context.Background(), c, Request{Path: "/tags/42"})
	require.NoError(t, err)
	assert.Equal(t, tagFixture{ID: "42", Label: "Politics"}, tag)
}

func TestExecute_SliceInResponseOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":"1"},{"id":"2"}]`)
	})

	tags, err := Execute[[]tagFixture](context.Background(), c, Request{Path: "/tags"})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "1", tags[0].ID)
	assert.Equal(t, "2", tags[1].ID)
}

func TestExecute_PrimitiveBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `"OK"`)
	})

	s, err := Execute[string](context.Background(), c, Request{Path: "/status"})
	require.NoError(t, err)
	assert.Equal(t, "OK", s)
}

func TestExecute_NullBodyBecomesNotFound(t *testing.T) {
	paths := []string{"/tags/42", "/tags/slug/politics", "/teams"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `null`)
			})

			_, err := Execute[tagFixture](context.Background(), c, Request{Path: path})
			require.Error(t, err)
			se, ok := sdkerrors.AsStatus(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusNotFound, se.StatusCode)
			assert.Equal(t, sdkerrors.NotFoundMessage, se.Body)
			assert.Equal(t, path, se.Path)
			assert.True(t, sdkerrors.IsNotFound(err))
		})
	}
}

func TestExecute_NonSuccessStatus(t *testing.T) {
	t.Run("verbatim body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			fmt.Fprint(w, "short and stout")
		})

		_, err := Execute[tagFixture](context.Background(), c, Request{Path: "/tags"})
		se, ok := sdkerrors.AsStatus(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusTeapot, se.StatusCode)
		assert.Equal(t, "short and stout", se.Body)
		assert.Equal(t, http.MethodGet, se.Method)
		assert.Equal(t, "/tags", se.Path)
	})

	t.Run("empty body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := Execute[tagFixture](context.Background(), c, Request{Path: "/tags"})
		se, ok := sdkerrors.AsStatus(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, se.StatusCode)
		assert.Equal(t, "", se.Body)
	})

	t.Run("json error body stays raw", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			fmt.Fprint(w, `{"error":"bad filter"}`)
		})

		_, err := Execute[tagFixture](context.Background(), c, Request{Path: "/tags"})
		se, ok := sdkerrors.AsStatus(err)
		require.True(t, ok)
		assert.Equal(t, `{"error":"bad filter"}`, se.Body)
	})
}

func TestExecute_DecodeFailures(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"id":`)
		})

		_, err := Execute[tagFixture](context.Background(), c, Request{Path: "/tags/1"})
		var de *sdkerrors.DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "/tags/1", de.Path)
		assert.Equal(t, http.MethodGet, de.Method)
	})

	t.Run("wrong shape", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"id":[1,2,3]}`)
		})

		_, err := Execute[tagFixture](context.Background(), c, Request{Path: "/tags/1"})
		var de *sdkerrors.DecodeError
		require.ErrorAs(t, err, &de)
	})

	t.Run("empty success body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := Execute[tagFixture](context.Background(), c, Request{Path: "/tags/1"})
		var de *sdkerrors.DecodeError
		require.ErrorAs(t, err, &de)
	})
}

func TestExecute_TransportFailure(t *testing.T) {
	cause := errors.New("connection refused")
	c, err := New(&failingDoer{err: cause}, "https://gamma-api.polymarket.com")
	require.NoError(t, err)

	_, execErr := Execute[tagFixture](context.Background(), c, Request{Path: "/tags"})
	var te *sdkerrors.TransportError
	require.ErrorAs(t, execErr, &te)
	assert.True(t, errors.Is(execErr, cause))
	assert.Equal(t, "/tags", te.Path)
}

func TestExecute_ContextDeadline(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Execute[tagFixture](ctx, c, Request{Path: "/tags"})
	var te *sdkerrors.TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestExecute_HeaderOverrideOnWire(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEqual(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "token", r.Header.Get("X-Api-Key"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		fmt.Fprint(w, `{"id":"1"}`)
	})

	h := make(http.Header)
	h.Set("X-Api-Key", "token")
	_, err := Execute[tagFixture](context.Background(), c, Request{Path: "/tags/1", Headers: h})
	require.NoError(t, err)
}

func TestExecute_RepeatedCallsAreStateless(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":"1"},{"id":"2"}]`)
	})

	first, err := Execute[[]tagFixture](context.Background(), c, Request{Path: "/tags"})
	require.NoError(t, err)
	second, err := Execute[[]tagFixture](context.Background(), c, Request{Path: "/tags"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
