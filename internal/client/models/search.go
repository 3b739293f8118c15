package models

// SearchEntityType narrows a search to one kind of entity.
type SearchEntityType string

const (
	SearchCourse     SearchEntityType = "course"
	SearchAssignment SearchEntityType = "assignment"
	SearchUser       SearchEntityType = "user"
)

// SortDirection orders advanced-search results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// AdvancedSearchParams is the body of POST /search/advanced.
type AdvancedSearchParams struct {
	Query         string           `json:"query,omitempty"`
	EntityType    SearchEntityType `json:"entity_type,omitempty"`
	Filters       map[string]any   `json:"filters,omitempty"`
	SortBy        string           `json:"sort_by,omitempty"`
	SortDirection SortDirection    `json:"sort_direction,omitempty"`
	Page          int              `json:"page" validate:"gte=1"`
	PerPage       int              `json:"per_page" validate:"gte=1,lte=100"`
}

// SearchResultMetadata carries entity-specific extras on a search hit.
type SearchResultMetadata struct {
	Term           string `json:"term,omitempty"`
	Role           string `json:"role,omitempty"`
	CourseID       int    `json:"course_id,omitempty"`
	DueDate        string `json:"due_date,omitempty"`
	PointsPossible int    `json:"points_possible,omitempty"`
}

// SearchResult is a single search hit.
type SearchResult struct {
	ID          int                  `json:"id"`
	Type        string               `json:"type"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Relevance   float64              `json:"relevance"`
	Metadata    SearchResultMetadata `json:"metadata"`
}

// SearchResults is the paginated search response envelope.
type SearchResults struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}
