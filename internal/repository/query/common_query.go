package query

// 分页默认值
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination 分页参数
type Pagination struct {
	Page     int `json:"page,omitempty" query:"page"`           // 页码，从1开始
	PageSize int `json:"page_size,omitempty" query:"page_size"` // 每页大小
	Offset   int `json:"-" query:"-"`                           // 偏移量，内部计算
}

// Normalize 修正越界的分页参数并计算偏移量
func (p *Pagination) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	p.Offset = (p.Page - 1) * p.PageSize
}

// Limit SQL LIMIT
func (p Pagination) Limit() int {
	return p.PageSize
}
