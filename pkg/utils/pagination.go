package utils

import "math"

// CalculateLastPage returns the number of the last page, never less than 1.
func CalculateLastPage(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// CalculateOffset saturates at the largest offset that still leaves room
// for one full page.
func CalculateOffset(page, perPage int) int {
	if page < 1 || perPage < 1 {
		return 0
	}
	if page > maxPage(perPage) {
		page = maxPage(perPage)
	}
	return (page - 1) * perPage
}

// NormalizePage clamps page to [1, maxPage(perPage)] and perPage to
// [1, maxPerPage], falling back to defaultPerPage when perPage is unset.
func NormalizePage(page, perPage, defaultPerPage, maxPerPage int) (int, int) {
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > maxPage(perPage) {
		page = maxPage(perPage)
	}
	return page, perPage
}

// maxPage is the highest page whose last row index fits in an int.
func maxPage(perPage int) int {
	return math.MaxInt / perPage
}
