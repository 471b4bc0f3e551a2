package gamma

import (
	"context"
	"errors"

	"github.com/google/go-querystring/query"

	"github.com/GoPolymarket/gamma-go-sdk/pkg/transport"
)

// BaseURL is the production Gamma API endpoint.
const BaseURL = "https://gamma-api.polymarket.com"

var (
	// ErrMissingRequest is returned when a required request struct is nil.
	ErrMissingRequest = errors.New("missing request")
	// ErrMissingTagID is returned when a by-ID request carries an empty ID.
	ErrMissingTagID = errors.New("missing tag id")
	// ErrMissingTagSlug is returned when a by-slug request carries an empty slug.
	ErrMissingTagSlug = errors.New("missing tag slug")
)

// clientImpl is the default Client implementation on top of pkg/transport.
type clientImpl struct {
	transport *transport.Client
}

// NewClient wraps a configured transport in a Gamma client. A nil transport
// binds to the production endpoint with default settings.
func NewClient(t *transport.Client) Client {
	if t == nil {
		t = transport.MustNew(nil, BaseURL)
	}
	return &clientImpl{transport: t}
}

func (c *clientImpl) Status(ctx context.Context) (StatusResponse, error) {
	return transport.Execute[StatusResponse](ctx, c.transport, transport.Request{
		Path: "/status",
	})
}

func (c *clientImpl) Teams(ctx context.Context, req *TeamsRequest) ([]Team, error) {
	q, err := query.Values(req)
	if err != nil {
		return nil, err
	}
	return transport.Execute[[]Team](ctx, c.transport, transport.Request{
		Path:  "/teams",
		Query: q,
	})
}

func (c *clientImpl) Sports(ctx context.Context) ([]SportsMetadata, error) {
	return transport.Execute[[]SportsMetadata](ctx, c.transport, transport.Request{
		Path: "/sports",
	})
}

func (c *clientImpl) SportsMarketTypes(ctx context.Context) (SportsMarketTypesResponse, error) {
	return transport.Execute[SportsMarketTypesResponse](ctx, c.transport, transport.Request{
		Path: "/sports/market-types",
	})
}

func (c *clientImpl) Tags(ctx context.Context, req *TagsRequest) ([]Tag, error) {
	q, err := query.Values(req)
	if err != nil {
		return nil, err
	}
	return transport.Execute[[]Tag](ctx, c.transport, transport.Request{
		Path:  "/tags",
		Query: q,
	})
}

func (c *clientImpl) TagByID(ctx context.Context, req *TagByIDRequest) (*Tag, error) {
	if req == nil {
		return nil, ErrMissingRequest
	}
	if req.ID == "" {
		return nil, ErrMissingTagID
	}
	q, err := query.Values(req)
	if err != nil {
		return nil, err
	}
	tag, err := transport.Execute[Tag](ctx, c.transport, transport.Request{
		Path:  transport.JoinPath("tags", req.ID),
		Query: q,
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *clientImpl) TagBySlug(ctx context.Context, req *TagBySlugRequest) (*Tag, error) {
	if req == nil {
		return nil, ErrMissingRequest
	}
	if req.Slug == "" {
		return nil, ErrMissingTagSlug
	}
	q, err := query.Values(req)
	if err != nil {
		return nil, err
	}
	tag, err := transport.Execute[Tag](ctx, c.transport, transport.Request{
		Path:  transport.JoinPath("tags", "slug", req.Slug),
		Query: q,
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *clientImpl) RelatedTagsByID(ctx context.Context, req *RelatedTagsByIDRequest) ([]RelatedTag, error) {
	if req == nil {
		return nil, ErrMissingRequest
	}
	if req.ID == "" {
		return nil, ErrMissingTagID
	}
	q, err := query.Values(req)
	if err != nil {
		return nil, err
	}
	return transport.Execute[[]RelatedTag](ctx, c.transport, transport.Request{
		Path:  transport.JoinPath("tags", req.ID, "related-tags"),
		Query: q,
	})
}

func (c *clientImpl) RelatedTagsBySlug(ctx context.Context, req *RelatedTagsBySlugRequest) ([]RelatedTag, error) {
	if req == nil {
		return nil, ErrMissingRequest
	}
	if req.Slug == "" {
		return nil, ErrMissingTagSlug
	}
	q, err := query.Values(req)
	if err != nil {
		return nil, err
	}
	return transport.Execute[[]RelatedTag](ctx, c.transport, transport.Request{
		Path:  transport.JoinPath("tags", "slug", req.Slug, "related-tags"),
		Query: q,
	})
}

func (c *clientImpl) TagsRelatedToTagByID(ctx context.Context, req *RelatedTagsByIDRequest) ([]Tag, error) {
	if req == nil {
		return nil, ErrMissingRequest
	}
	if req.ID == "" {
		return nil, ErrMissingTagID
	}
	q, err := query.Values(req)
	if err != nil {
		return nil, err
	}
	return transport.Execute[[]Tag](ctx, c.transport, transport.Request{
		Path:  transport.JoinPath("tags", req.ID, "related-tags", "tags"),
		Query: q,
	})
}

func (c *clientImpl) TagsRelatedToTagBySlug(ctx context.Context, req *RelatedTagsBySlugRequest) ([]Tag, error) {
	if req == nil {
		return nil, ErrMissingRequest
	}
	if req.Slug == "" {
		return nil, ErrMissingTagSlug
	}
	q, err := query.Values(req)
	if err != nil {
		return nil, err
	}
	return transport.Execute[[]Tag](ctx, c.transport, transport.Request{
		Path:  transport.JoinPath("tags", "slug", req.Slug, "related-tags", "tags"),
		Query: q,
	})
}
