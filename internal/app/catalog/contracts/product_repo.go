package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
)

// ProductRepo is the write-side repository interface for product aggregates.
// Methods return Spanner mutations; they do not apply them. A single
// ProductDetails expands into mutations for the product row, its options,
// variants, variant options and images, so the caller can commit the whole
// aggregate atomically.
type ProductRepo interface {
	InsertMuts(d *domain.ProductDetails) []*spanner.Mutation
}
