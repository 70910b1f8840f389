package request

// PaginatedRequest carries the raw page query. Services clamp it with
// utils.NormalizePage.
type PaginatedRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}
