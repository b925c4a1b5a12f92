package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		in         Pagination
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"零值使用默认值", Pagination{}, 1, DefaultPageSize, 0},
		{"负数页码修正为1", Pagination{Page: -3, PageSize: 10}, 1, 10, 0},
		{"超过上限截断", Pagination{Page: 2, PageSize: 1000}, 2, MaxPageSize, MaxPageSize},
		{"正常分页", Pagination{Page: 3, PageSize: 15}, 3, 15, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Normalize()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
			assert.Equal(t, tt.wantOffset, p.Offset)
			assert.Equal(t, tt.wantSize, p.Limit())
		})
	}
}
