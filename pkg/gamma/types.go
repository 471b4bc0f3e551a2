package gamma

// StatusResponse is the raw health string reported by the Gamma service.
type StatusResponse string

// Tag is a market category tag. Tags form a graph: the related-tags endpoints
// expose the edges (RelatedTag) and the resolved neighbors ([]Tag).
type Tag struct {
	ID          string `json:"id"`
	Label       string `json:"label,omitempty"`
	Slug        string `json:"slug,omitempty"`
	ForceShow   bool   `json:"forceShow,omitempty"`
	ForceHide   bool   `json:"forceHide,omitempty"`
	IsCarousel  bool   `json:"isCarousel,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	CreatedBy   int    `json:"createdBy,omitempty"`
	UpdatedBy   int    `json:"updatedBy,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// RelatedTag is a relationship record linking two tags. It is an edge, not a
// resolved tag; use TagsRelatedToTagByID or TagsRelatedToTagBySlug when the
// full tag objects are needed.
type RelatedTag struct {
	ID           string `json:"id"`
	TagID        int    `json:"tagID,omitempty"`
	RelatedTagID int    `json:"relatedTagID,omitempty"`
	Rank         int    `json:"rank,omitempty"`
}

// Team describes a sports team referenced by sports markets.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name,omitempty"`
	League       string `json:"league,omitempty"`
	Record       string `json:"record,omitempty"`
	Logo         string `json:"logo,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Alias        string `json:"alias,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// SportsMetadata describes one supported sport category.
type SportsMetadata struct {
	ID         string   `json:"id"`
	Label      string   `json:"label,omitempty"`
	Sport      string   `json:"sport,omitempty"`
	Image      string   `json:"image,omitempty"`
	Resolution string   `json:"resolution,omitempty"`
	Ordering   int      `json:"ordering,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// SportsMarketType describes the market templates available for one sport.
type SportsMarketType struct {
	Sport       string   `json:"sport,omitempty"`
	MarketTypes []string `json:"marketTypes,omitempty"`
}

// SportsMarketTypesResponse is the envelope returned by the
// sports/market-types endpoint.
type SportsMarketTypesResponse struct {
	Sports []SportsMarketType `json:"sports"`
}
