package dto

import (
	"fmt"

	"github.com/polkiloo/usersapi/internal/domain/model"
)

// UsersPath is the collection path used in pagination links.
const UsersPath = "/api/users"

// Pagination is serialized into the X-Pagination response header.
type Pagination struct {
	PreviousPageLink *string `json:"previousPageLink"`
	NextPageLink     *string `json:"nextPageLink"`
	TotalCount       int     `json:"totalCount"`
	PageSize         int     `json:"pageSize"`
	CurrentPage      int     `json:"currentPage"`
	TotalPages       int     `json:"totalPages"`
	HasPrevious      bool    `json:"hasPrevious"`
	HasNext          bool    `json:"hasNext"`
}

// NewPagination builds header payload with links to neighbouring pages.
func NewPagination(d model.PageDescriptor) Pagination {
	p := Pagination{
		TotalCount:  d.TotalCount,
		PageSize:    d.PageSize,
		CurrentPage: d.CurrentPage,
		TotalPages:  d.TotalPages,
		HasPrevious: d.HasPrevious,
		HasNext:     d.HasNext,
	}
	if d.HasPrevious {
		link := pageLink(d.CurrentPage-1, d.PageSize)
		p.PreviousPageLink = &link
	}
	if d.HasNext {
		link := pageLink(d.CurrentPage+1, d.PageSize)
		p.NextPageLink = &link
	}
	return p
}

func pageLink(pageNumber, pageSize int) string {
	return fmt.Sprintf("%s?pageNumber=%d&pageSize=%d", UsersPath, pageNumber, pageSize)
}
