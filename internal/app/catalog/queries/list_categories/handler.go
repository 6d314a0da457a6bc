package list_categories

import (
	"context"

	"github.com/shoplane/catalog-service/internal/app/catalog/contracts"
	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
	"github.com/shoplane/catalog-service/internal/app/catalog/dto"
)

// Handler serves the category tree.
type Handler struct {
	categories contracts.CategoryRepo
}

func NewHandler(categories contracts.CategoryRepo) *Handler {
	return &Handler{categories: categories}
}

func (h *Handler) Execute(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := h.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	tree, err := domain.CategoryTreeFromFlatList(categories)
	if err != nil {
		return nil, err
	}

	return dto.FromCategoryTree(tree), nil
}
