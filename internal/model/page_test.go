package model

import "testing"

func TestPageRequest_Normalized(t *testing.T) {
	tests := []struct {
		name      string
		in        PageRequest
		wantPage  int
		wantLimit int
	}{
		{name: "zero values", in: PageRequest{}, wantPage: 1, wantLimit: DefaultLimit},
		{name: "negative page", in: PageRequest{Page: -3, Limit: 20}, wantPage: 1, wantLimit: 20},
		{name: "limit over cap", in: PageRequest{Page: 2, Limit: 500}, wantPage: 2, wantLimit: MaxLimit},
		{name: "already valid", in: PageRequest{Page: 4, Limit: 25}, wantPage: 4, wantLimit: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if got.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", got.Limit, tt.wantLimit)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	p := PageRequest{Page: 3, Limit: 10}
	if got := p.Offset(); got != 20 {
		t.Errorf("offset = %d, want 20", got)
	}

	first := PageRequest{Page: 1, Limit: 10}
	if got := first.Offset(); got != 0 {
		t.Errorf("offset = %d, want 0", got)
	}
}

func TestPageRequest_Descending(t *testing.T) {
	if (PageRequest{SortOrder: "asc"}).Descending() {
		t.Error("asc should sort ascending")
	}
	if !(PageRequest{SortOrder: "desc"}).Descending() {
		t.Error("desc should sort descending")
	}
	// Default direction is descending
	if !(PageRequest{}).Descending() {
		t.Error("empty sort order should sort descending")
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
