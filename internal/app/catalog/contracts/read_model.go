package contracts

import (
	"context"

	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
)

// SortBy names the columns a product listing may be ordered by.
type SortBy string

const (
	SortByName      SortBy = "name"
	SortByCreatedAt SortBy = "createdAt"
)

// SortOrder is the listing direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ProductQuery carries the paging, filtering and sorting parameters of a
// product listing.
type ProductQuery struct {
	Page       int
	PerPage    int
	CategoryID *string
	Keyword    *string
	MinPrice   *int64
	MaxPrice   *int64
	Statuses   []domain.ProductStatus
	SortBy     SortBy
	Order      SortOrder
}

// Offset converts the 1-based page into a row offset.
func (q ProductQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// ProductReadModel assembles product aggregates from persisted rows.
// Implementations must fetch the child rows for a page in batch queries keyed
// by the page's product IDs, never one query per product.
type ProductReadModel interface {
	// FindMany returns one page of aggregates plus the unpaginated total.
	FindMany(ctx context.Context, q ProductQuery) ([]*domain.ProductAggregate, int64, error)

	// FindByID returns a single aggregate or domain.ErrProductNotFound.
	FindByID(ctx context.Context, productID string) (*domain.ProductAggregate, error)
}
