package get_product

import (
	"context"

	"github.com/shoplane/catalog-service/internal/app/catalog/contracts"
	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
	"github.com/shoplane/catalog-service/internal/app/catalog/dto"
)

// Handler serves the product detail view.
type Handler struct {
	readModel contracts.ProductReadModel
}

func NewHandler(readModel contracts.ProductReadModel) *Handler {
	return &Handler{readModel: readModel}
}

// Execute loads one aggregate and re-validates it through the aggregate root
// before exposing it.
func (h *Handler) Execute(ctx context.Context, productID string) (*dto.ProductDetailsDTO, error) {
	agg, err := h.readModel.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	details, err := domain.NewProductDetails(agg.Product, agg.Variants, agg.Images)
	if err != nil {
		return nil, err
	}

	return dto.FromProductDetails(details), nil
}
