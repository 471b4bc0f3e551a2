package gamma

// Request structs describe per-endpoint filters. Optional fields are
// pointers: a nil field is omitted from the query string entirely, while a
// set field is always sent, so an explicit false still serializes as
// "include_template=false". Encoding is handled by go-querystring via the
// url tags.

// TeamsRequest filters the Teams listing.
type TeamsRequest struct {
	Limit        *int     `url:"limit,omitempty"`
	Offset       *int     `url:"offset,omitempty"`
	Order        *string  `url:"order,omitempty"`
	Ascending    *bool    `url:"ascending,omitempty"`
	League       []string `url:"league,omitempty"`
	Name         []string `url:"name,omitempty"`
	Abbreviation []string `url:"abbreviation,omitempty"`
}

// TagsRequest filters the Tags listing.
type TagsRequest struct {
	Limit           *int    `url:"limit,omitempty"`
	Offset          *int    `url:"offset,omitempty"`
	Order           *string `url:"order,omitempty"`
	Ascending       *bool   `url:"ascending,omitempty"`
	IncludeTemplate *bool   `url:"include_template,omitempty"`
	IsCarousel      *bool   `url:"is_carousel,omitempty"`
}

// TagByIDRequest identifies a tag by ID. IncludeTemplate asks the service to
// attach template metadata to the returned tag.
type TagByIDRequest struct {
	ID              string `url:"-"`
	IncludeTemplate *bool  `url:"include_template,omitempty"`
}

// TagBySlugRequest identifies a tag by its URL slug.
type TagBySlugRequest struct {
	Slug            string `url:"-"`
	IncludeTemplate *bool  `url:"include_template,omitempty"`
}

// RelatedTagsByIDRequest identifies a tag by ID for the related-tags
// endpoints. OmitEmpty drops relationships whose target has no active
// markets; Status filters by tag status.
type RelatedTagsByIDRequest struct {
	ID        string  `url:"-"`
	OmitEmpty *bool   `url:"omit_empty,omitempty"`
	Status    *string `url:"status,omitempty"`
}

// RelatedTagsBySlugRequest identifies a tag by slug for the related-tags
// endpoints.
type RelatedTagsBySlugRequest struct {
	Slug      string  `url:"-"`
	OmitEmpty *bool   `url:"omit_empty,omitempty"`
	Status    *string `url:"status,omitempty"`
}
