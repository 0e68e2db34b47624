package helpers

import (
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Pagination holds the parsed page parameters of a list request.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and page_size query parameters, clamping them
// to sane bounds.
func ParsePagination(r *http.Request) Pagination {
	p := Pagination{Page: 1, PageSize: defaultPageSize}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 {
		p.PageSize = v
		if p.PageSize > maxPageSize {
			p.PageSize = maxPageSize
		}
	}
	return p
}

// PaginationMeta describes a page of results in list responses.
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationMeta computes the metadata for a page of results.
func NewPaginationMeta(p Pagination, total int) PaginationMeta {
	pages := (total + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		pages = 1
	}
	return PaginationMeta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: pages,
	}
}
