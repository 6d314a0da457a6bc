package admin_list_products

import (
	"context"

	"github.com/shoplane/catalog-service/internal/app/catalog/contracts"
	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
	"github.com/shoplane/catalog-service/internal/app/catalog/dto"
)

// Handler serves the admin product listing. Unlike the storefront listing it
// honours the caller's status filter and tolerates products without variants.
type Handler struct {
	readModel  contracts.ProductReadModel
	categories contracts.CategoryRepo
}

func NewHandler(readModel contracts.ProductReadModel, categories contracts.CategoryRepo) *Handler {
	return &Handler{readModel: readModel, categories: categories}
}

func (h *Handler) Execute(ctx context.Context, q contracts.ProductQuery) (*dto.AdminProductListResponse, error) {
	aggs, total, err := h.readModel.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}

	cats, err := h.lookupCategories(ctx, aggs)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.AdminProductListItem, 0, len(aggs))
	for _, agg := range aggs {
		cat, ok := cats[agg.Product.CategoryID()]
		if !ok {
			return nil, domain.ErrCategoryNotFound
		}
		item, err := domain.NewAdminProductListItem(agg.Product, cat, agg.Images, agg.Variants)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	list, err := domain.NewAdminProductList(items)
	if err != nil {
		return nil, err
	}

	itemDTOs := make([]*dto.AdminProductListItemDTO, 0, len(list.Items()))
	for _, li := range list.Items() {
		itemDTOs = append(itemDTOs, dto.FromAdminProductListItem(li))
	}

	return &dto.AdminProductListResponse{
		Items:          itemDTOs,
		Pagination:     dto.NewPagination(q.Page, q.PerPage, total),
		DraftCount:     list.DraftCount(),
		PublishedCount: list.PublishedCount(),
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
