package transport

import (
	"context"
	"encoding/json"
	"io"

	sdkerrors "github.com/GoPolymarket/gamma-go-sdk/pkg/errors"
)

// Execute dispatches r through c and decodes the JSON response body into T.
// It is a free function because Go methods cannot declare type parameters.
//
// Outcome mapping:
//   - network-level failure: *errors.TransportError wrapping the cause
//   - non-2xx status: *errors.StatusError carrying the verbatim body text
//     (empty when the body cannot be read)
//   - 2xx body that fails to decode, including an empty body:
//     *errors.DecodeError
//   - 2xx body of JSON null: *errors.StatusError with code 404 and the fixed
//     message "Unable to find requested resource" — the service reports
//     "found nothing" as a successful empty payload, which the SDK surfaces
//     as a client-visible not-found
//
// Each call is a single stateless request/response cycle. Nothing is retried
// and nothing is cached; deadlines come from ctx.
func Execute[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var zero T

	req, err := c.newHTTPRequest(ctx, r)
	if err != nil {
		return zero, err
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		c.logger().Debugw("gamma request failed", "method", req.Method, "path", r.Path, "error", err)
		return zero, &sdkerrors.TransportError{Method: req.Method, Path: r.Path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readBodyText(resp.Body)
		c.logger().Debugw("gamma request rejected", "method", req.Method, "path", r.Path, "status", resp.StatusCode)
		return zero, &sdkerrors.StatusError{
			StatusCode: resp.StatusCode,
			Method:     req.Method,
			Path:       r.Path,
			Body:       body,
		}
	}

	var decoded *T
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger().Debugw("gamma response undecodable", "method", req.Method, "path", r.Path, "error", err)
		return zero, &sdkerrors.DecodeError{Method: req.Method, Path: r.Path, Err: err}
	}
	if decoded == nil {
		return zero, sdkerrors.NewNotFound(req.Method, r.Path)
	}

	c.logger().Debugw("gamma request completed", "method", req.Method, "path", r.Path, "status", resp.StatusCode)
	return *decoded, nil
}

// readBodyText drains r best-effort: a read failure yields an empty string,
// never a secondary error.
func readBodyText(r io.Reader) string {
	b, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	return string(b)
}
