package dto

// ListFilter is bound from the query string of every paginated listing
// (GET /<resource>?page&limit&search).
type ListFilter struct {
	Page   int    `form:"page,default=1"    validate:"min=1"`
	Limit  int    `form:"limit,default=20"  validate:"min=1,max=200"`
	Search string `form:"search"`
}

// ListResponse is the uniform pagination envelope.
type ListResponse[T any] struct {
	Data        []T   `json:"data"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// NewListResponse computes totalPages from the filter's limit.
func NewListResponse[T any](data []T, total int64, filter ListFilter) *ListResponse[T] {
	pages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		pages++
	}
	return &ListResponse[T]{
		Data:        data,
		Total:       total,
		TotalPages:  pages,
		CurrentPage: filter.Page,
	}
}
