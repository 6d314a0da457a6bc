package list_products

import (
	"context"

	"github.com/shoplane/catalog-service/internal/app/catalog/contracts"
	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
	"github.com/shoplane/catalog-service/internal/app/catalog/dto"
)

// Handler serves the storefront product listing.
type Handler struct {
	readModel  contracts.ProductReadModel
	categories contracts.CategoryRepo
}

func NewHandler(readModel contracts.ProductReadModel, categories contracts.CategoryRepo) *Handler {
	return &Handler{readModel: readModel, categories: categories}
}

// Execute lists published products. Categories for the page are resolved in
// one batch lookup, never per item.
func (h *Handler) Execute(ctx context.Context, q contracts.ProductQuery) (*dto.ProductListResponse, error) {
	// The storefront only ever sees published products.
	q.Statuses = []domain.ProductStatus{domain.ProductStatusPublished}

	aggs, total, err := h.readModel.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}

	cats, err := h.lookupCategories(ctx, aggs)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.ProductListItem, 0, len(aggs))
	for _, agg := range aggs {
		cat, ok := cats[agg.Product.CategoryID()]
		if !ok {
			return nil, domain.ErrCategoryNotFound
		}
		item, err := domain.NewProductListItem(agg.Product, cat, agg.Images, agg.Variants)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	list, err := domain.NewProductList(items)
	if err != nil {
		return nil, err
	}

	itemDTOs := make([]*dto.ProductListItemDTO, 0, len(list.Items()))
	for _, li := range list.Items() {
		itemDTOs = append(itemDTOs, dto.FromProductListItem(li))
	}

	return &dto.ProductListResponse{
		Items:      itemDTOs,
		Pagination: dto.NewPagination(q.Page, q.PerPage, total),
	}, nil
}

func (h *Handler) lookupCategories(ctx context.Context, aggs []*domain.ProductAggregate) (map[string]*domain.Category, error) {
	seen := make(map[string]struct{}, len(aggs))
	ids := make([]string, 0, len(aggs))
	for _, agg := range aggs {
		id := agg.Product.CategoryID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return h.categories.FindByIDs(ctx, ids)
}
