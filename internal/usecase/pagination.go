package usecase

import "github.com/polkiloo/usersapi/internal/domain/model"

// Paginator clamps raw paging input and builds page descriptors.
type Paginator struct {
	min int
	max int
}

// NewPaginator constructs Paginator bounded by rules.
func NewPaginator(rules Rules) Paginator {
	return Paginator{min: rules.MinPageSize, max: rules.MaxPageSize}
}

// Normalize coerces page number and size into the served range.
func (p Paginator) Normalize(pageNumber, pageSize int) (int, int) {
	if pageNumber <= 0 {
		pageNumber = 1
	}
	if pageSize <= p.min {
		pageSize = p.min
	}
	if pageSize > p.max {
		pageSize = p.max
	}
	return pageNumber, pageSize
}

// Describe builds navigation metadata for an already normalized page.
func (p Paginator) Describe(pageNumber, pageSize, totalCount int) model.PageDescriptor {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return model.PageDescriptor{
		CurrentPage: pageNumber,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasPrevious: pageNumber > 1,
		HasNext:     pageNumber < totalPages,
	}
}
