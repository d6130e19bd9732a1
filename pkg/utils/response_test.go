package utils

import (
	"testing"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		total    int64
		wantNext *PageInfo
		wantPrev *PageInfo
	}{
		{"empty result", 1, 10, 0, nil, nil},
		{"single page", 1, 10, 5, nil, nil},
		{"exactly one full page", 1, 10, 10, nil, nil},
		{"first of many", 1, 10, 25, &PageInfo{Page: 2, Limit: 10}, nil},
		{"middle page", 2, 10, 25, &PageInfo{Page: 3, Limit: 10}, &PageInfo{Page: 1, Limit: 10}},
		{"last page", 3, 10, 25, nil, &PageInfo{Page: 2, Limit: 10}},
		{"page past the end", 5, 10, 25, nil, &PageInfo{Page: 4, Limit: 10}},
		{"small limit", 2, 1, 3, &PageInfo{Page: 3, Limit: 1}, &PageInfo{Page: 1, Limit: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(tt.page, tt.limit, tt.total)

			if !pageInfoEqual(got.Next, tt.wantNext) {
				t.Errorf("Next = %+v, want %+v", got.Next, tt.wantNext)
			}
			if !pageInfoEqual(got.Prev, tt.wantPrev) {
				t.Errorf("Prev = %+v, want %+v", got.Prev, tt.wantPrev)
			}
		})
	}
}

func pageInfoEqual(a, b *PageInfo) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
