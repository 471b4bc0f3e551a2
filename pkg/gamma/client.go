// Package gamma provides the client for interacting with the Polymarket Gamma API.
// Gamma is the read-only metadata and discovery service for Polymarket, covering
// sports, teams, tags, and the relationships between tags.
package gamma

import (
	"context"
)

// Client defines the interface for the Polymarket Gamma metadata service.
// All methods are safe for concurrent use; each call is an independent
// request/response cycle with no shared mutable state.
type Client interface {
	// -- System Status --

	// Status returns the current operational status of the Gamma service.
	Status(ctx context.Context) (StatusResponse, error)

	// -- Sports & Teams --

	// Teams retrieves a list of teams associated with sports markets.
	// A nil request applies no filters.
	Teams(ctx context.Context, req *TeamsRequest) ([]Team, error)
	// Sports retrieves metadata about supported sport categories.
	Sports(ctx context.Context) ([]SportsMetadata, error)
	// SportsMarketTypes lists the types of prediction markets available for sports.
	SportsMarketTypes(ctx context.Context) (SportsMarketTypesResponse, error)

	// -- Tags --

	// Tags retrieves a list of market tags (categories).
	// A nil request applies no filters.
	Tags(ctx context.Context, req *TagsRequest) ([]Tag, error)
	// TagByID retrieves a specific tag by its unique ID.
	TagByID(ctx context.Context, req *TagByIDRequest) (*Tag, error)
	// TagBySlug retrieves a specific tag by its URL slug.
	TagBySlug(ctx context.Context, req *TagBySlugRequest) (*Tag, error)
	// RelatedTagsByID lists the relationship records attached to a tag ID.
	// The result is the raw edges, not resolved tags.
	RelatedTagsByID(ctx context.Context, req *RelatedTagsByIDRequest) ([]RelatedTag, error)
	// RelatedTagsBySlug lists the relationship records attached to a tag slug.
	RelatedTagsBySlug(ctx context.Context, req *RelatedTagsBySlugRequest) ([]RelatedTag, error)
	// TagsRelatedToTagByID retrieves full tag objects related to a specific tag ID.
	TagsRelatedToTagByID(ctx context.Context, req *RelatedTagsByIDRequest) ([]Tag, error)
	// TagsRelatedToTagBySlug retrieves full tag objects related to a specific tag slug.
	TagsRelatedToTagBySlug(ctx context.Context, req *RelatedTagsBySlugRequest) ([]Tag, error)
}
