package response

// Meta describes the pagination state of a list response.
type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// ItemResponse wraps a single resource.
type ItemResponse struct {
	Data interface{} `json:"data"`
}

// ListResponse wraps a page of resources plus pagination metadata.
type ListResponse struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}

// ErrorResponse is the body for 401/404/500 outcomes.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries field-level errors for 422 outcomes.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
