package types

const DefaultPageSize = 20

type PageRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

func (p *PageRequest) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 || p.PageSize > 100 {
		p.PageSize = DefaultPageSize
	}
}

func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}
