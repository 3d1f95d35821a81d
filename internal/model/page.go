package model

import "errors"

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// SortAsc is the only value that selects ascending order; anything else
// (including empty) sorts descending.
const SortAsc = "asc"

// PageRequest is the normalized page/limit/sort triple shared by all list
// queries. Sort fields are validated by each repository against its own
// allow-list.
type PageRequest struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Normalized clamps page and limit into valid bounds.
func (p PageRequest) Normalized() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset converts the 1-based page into a row offset.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Descending reports the sort direction; asc is opt-in.
func (p PageRequest) Descending() bool {
	return p.SortOrder != SortAsc
}

// TotalPages is ceil(total/limit), never negative.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}

// ErrInvalidSortField is returned when a sort field is not in the allow-list
// for the query in question.
var ErrInvalidSortField = errors.New("invalid sort field")
