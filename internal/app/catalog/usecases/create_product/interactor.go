package create_product

import (
	"context"

	"github.com/google/uuid"

	"github.com/shoplane/catalog-service/internal/app/catalog/contracts"
	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
	"github.com/shoplane/catalog-service/internal/app/catalog/dto"
	"github.com/shoplane/catalog-service/internal/pkg/clock"
	commitplan "github.com/shoplane/catalog-service/internal/pkg/committer"
)

// OptionInput declares one option axis of the new product.
type OptionInput struct {
	OptionName   string
	DisplayOrder int
}

// VariantOptionInput binds a variant to one option value.
type VariantOptionInput struct {
	OptionName   string
	OptionValue  string
	DisplayOrder int
}

// VariantInput declares one purchasable variant of the new product.
type VariantInput struct {
	SKU          string
	Barcode      *string
	ImageURL     *string
	Price        int64
	DisplayOrder int
	Options      []VariantOptionInput
}

// ImageInput declares one image. VariantSKU optionally scopes the image to
// one of the request's variants; IDs are minted here, so the SKU is the only
// stable reference the caller has.
type ImageInput struct {
	ImageURL     string
	DisplayOrder int
	VariantSKU   *string
}

// Request is the application-level create-product request.
type Request struct {
	Name        string
	Description string
	CategoryID  string
	Status      string
	Options     []OptionInput
	Variants    []VariantInput
	Images      []ImageInput
}

// Interactor implements the create-product usecase. The whole aggregate is
// validated before a single mutation is built, and every mutation commits in
// one plan (validate-then-persist, never the reverse).
type Interactor struct {
	CategoryRepo contracts.CategoryRepo
	ProductRepo  contracts.ProductRepo
	Committer    contracts.Committer
	Clock        clock.Clock
}

func NewInteractor(categoryRepo contracts.CategoryRepo, productRepo contracts.ProductRepo,
	committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		CategoryRepo: categoryRepo,
		ProductRepo:  productRepo,
		Committer:    committer,
		Clock:        clk,
	}
}

// Execute creates a product with its options, variants and images in one
// atomic commit and returns the persisted shape.
func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.ProductDetailsDTO, error) {
	now := it.Clock.Now()

	status, err := domain.ParseProductStatus(req.Status)
	if err != nil {
		return nil, err
	}

	// The referenced category must exist before any aggregate is built.
	cats, err := it.CategoryRepo.FindByIDs(ctx, []string{req.CategoryID})
	if err != nil {
		return nil, err
	}
	if _, ok := cats[req.CategoryID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}

	productID := uuid.New().String()

	options := make([]*domain.ProductOption, 0, len(req.Options))
	for _, in := range req.Options {
		option, err := domain.NewProductOption(uuid.New().String(), productID, in.OptionName, in.DisplayOrder, now, now)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}

	product, err := domain.NewProduct(productID, req.Name, req.Description, req.CategoryID, status, options, now, now)
	if err != nil {
		return nil, err
	}

	variants := make([]*domain.ProductVariant, 0, len(req.Variants))
	variantIDBySKU := make(map[string]string, len(req.Variants))
	for _, in := range req.Variants {
		variantID := uuid.New().String()

		variantOptions := make([]*domain.ProductVariantOption, 0, len(in.Options))
		for _, vin := range in.Options {
			vo, err := domain.NewProductVariantOption(uuid.New().String(), variantID,
				vin.OptionName, vin.OptionValue, vin.DisplayOrder, now, now)
			if err != nil {
				return nil, err
			}
			variantOptions = append(variantOptions, vo)
		}

		price, err := domain.NewMoney(in.Price)
		if err != nil {
			return nil, err
		}

		variant, err := domain.NewProductVariant(variantID, productID, in.SKU, in.Barcode, in.ImageURL,
			price, in.DisplayOrder, variantOptions, now, now)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
		variantIDBySKU[variant.SKU()] = variantID
	}

	images := make([]*domain.ProductImage, 0, len(req.Images))
	for _, in := range req.Images {
		var variantID *string
		if in.VariantSKU != nil {
			id, ok := variantIDBySKU[*in.VariantSKU]
			if !ok {
				return nil, domain.ErrUnknownImageVariant
			}
			variantID = &id
		}

		image, err := domain.NewProductImage(uuid.New().String(), productID, variantID,
			in.ImageURL, in.DisplayOrder, now, now)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}

	details, err := domain.NewProductDetails(product, variants, images)
	if err != nil {
		return nil, err
	}

	plan := commitplan.NewPlan()
	plan.AddAll(it.ProductRepo.InsertMuts(details))

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, err
	}

	return dto.FromProductDetails(details), nil
}
