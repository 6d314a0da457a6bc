package contracts

import (
	"context"

	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
)

// CategoryRepo is the read-side repository for categories.
type CategoryRepo interface {
	// FindByIDs resolves a batch of category IDs in one lookup. Missing IDs
	// are simply absent from the returned map; callers decide whether that
	// is an error.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Category, error)

	// FindAll returns every category, for tree reconstruction.
	FindAll(ctx context.Context) ([]*domain.Category, error)
}
