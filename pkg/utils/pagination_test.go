package utils

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLastPage(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{"empty table", 0, 10, 1},
		{"partial page", 7, 10, 1},
		{"exact pages", 20, 10, 2},
		{"one over", 21, 10, 3},
		{"bad per page", 50, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateLastPage(tt.total, tt.perPage))
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 0, CalculateOffset(3, 0))
}

func TestHugePageDoesNotOverflow(t *testing.T) {
	page, perPage := NormalizePage(ParseInt(strconv.Itoa(math.MaxInt), 1), 10, 10, 100)

	offset := CalculateOffset(page, perPage)
	assert.GreaterOrEqual(t, offset, 0)
	assert.LessOrEqual(t, offset, math.MaxInt-perPage)
	assert.Equal(t, math.MaxInt/10, page)

	assert.GreaterOrEqual(t, CalculateOffset(math.MaxInt, 100), 0)
	assert.GreaterOrEqual(t, CalculateOffset(math.MaxInt, 1), 0)
}

func TestNormalizePage(t *testing.T) {
	page, perPage := NormalizePage(0, 0, 10, 100)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, perPage)

	page, perPage = NormalizePage(3, 500, 10, 100)
	assert.Equal(t, 3, page)
	assert.Equal(t, 100, perPage)

	_, perPage = NormalizePage(1, 25, 10, 100)
	assert.Equal(t, 25, perPage)
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 4, ParseInt("4", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}
