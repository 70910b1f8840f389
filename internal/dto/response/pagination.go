package response

import "site-admin/pkg/utils"

// PaginatedResponse is the offset pagination envelope returned by list
// endpoints and embedded in page props.
type PaginatedResponse[T any] struct {
	Data        []T   `json:"data"`
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	LastPage    int   `json:"last_page"`
	From        *int  `json:"from"`
	To          *int  `json:"to"`
}

func NewPaginatedResponse[T any](data []T, page, perPage int, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}

	resp := &PaginatedResponse[T]{
		Data:        data,
		Total:       total,
		CurrentPage: page,
		PerPage:     perPage,
		LastPage:    utils.CalculateLastPage(total, perPage),
	}

	if len(data) > 0 {
		from := utils.CalculateOffset(page, perPage) + 1
		to := from + len(data) - 1
		resp.From = &from
		resp.To = &to
	}

	return resp
}
