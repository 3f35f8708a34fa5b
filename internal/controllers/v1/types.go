package v1

import (
	ft_uuid "github.com/fintrack-app/backend/internal/uuid"
)

type URIID struct {
	ID ft_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination is the metadata for one page of a record listing.
type Pagination struct {
	Total      int64 `json:"total" example:"23"`     // Number of records matching the query across all pages
	Page       int   `json:"page" example:"1"`       // The page returned, 1-based
	PageSize   int   `json:"pageSize" example:"10"`  // Maximum number of records on the page
	TotalPages int   `json:"totalPages" example:"3"` // Number of pages for the query
}

// newPagination computes pagination metadata for a total record count.
func newPagination(total int64, page, pageSize int) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
