package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "?page=3&page_size=50", 3, 50},
		{"clamped size", "?page_size=500", 1, 100},
		{"garbage ignored", "?page=abc&page_size=-1", 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/x"+tt.query, nil)
			p := ParsePagination(r)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(Pagination{Page: 2, PageSize: 10}, 25)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 25, meta.Total)

	meta = NewPaginationMeta(Pagination{Page: 1, PageSize: 10}, 0)
	assert.Equal(t, 1, meta.TotalPages)
}
