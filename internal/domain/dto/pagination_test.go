package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		in           ListQuery
		wantPage     int
		wantPageSize int
	}{
		{"zero values", ListQuery{}, 1, 10},
		{"negative page", ListQuery{Page: -3, PageSize: 20}, 1, 20},
		{"oversized page size clamps", ListQuery{Page: 2, PageSize: 500}, 2, 100},
		{"already sane", ListQuery{Page: 4, PageSize: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantPageSize, tt.in.PageSize)
		})
	}
}

func TestNewPage(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, 1, 10, 23)
	assert.Equal(t, 3, len(p.Data))
	assert.Equal(t, 3, p.TotalPages)

	p = NewPage([]int{}, 1, 10, 30)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPage([]int{}, 1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
}
