package catalog

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/shoplane/catalog-service/internal/app/catalog/contracts"
	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
	"github.com/shoplane/catalog-service/internal/app/catalog/usecases/create_product"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

// parseListQuery reads the listing parameters from the URL query. The status
// filter is only honoured on the admin surface.
func parseListQuery(r *http.Request, allowStatuses bool) (contracts.ProductQuery, error) {
	q := contracts.ProductQuery{
		Page:    defaultPage,
		PerPage: defaultPerPage,
		SortBy:  contracts.SortByCreatedAt,
		Order:   contracts.SortDesc,
	}
	values := r.URL.Query()

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, fmt.Errorf("page must be a positive integer")
		}
		q.Page = page
	}

	if raw := values.Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage < 1 || perPage > maxPerPage {
			return q, fmt.Errorf("per_page must be between 1 and %d", maxPerPage)
		}
		q.PerPage = perPage
	}

	if raw := values.Get("category_id"); raw != "" {
		q.CategoryID = &raw
	}
	if raw := values.Get("keyword"); raw != "" {
		q.Keyword = &raw
	}

	if raw := values.Get("min_price"); raw != "" {
		minPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || minPrice < 0 {
			return q, fmt.Errorf("min_price must be a non-negative integer")
		}
		q.MinPrice = &minPrice
	}
	if raw := values.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || maxPrice < 0 {
			return q, fmt.Errorf("max_price must be a non-negative integer")
		}
		q.MaxPrice = &maxPrice
	}

	if allowStatuses {
		for _, raw := range values["status"] {
			status, err := domain.ParseProductStatus(raw)
			if err != nil {
				return q, fmt.Errorf("status must be draft, published or archived")
			}
			q.Statuses = append(q.Statuses, status)
		}
	}

	if raw := values.Get("sort"); raw != "" {
		switch raw {
		case "name":
			q.SortBy = contracts.SortByName
		case "created_at":
			q.SortBy = contracts.SortByCreatedAt
		default:
			return q, fmt.Errorf("sort must be name or created_at")
		}
	}

	if raw := values.Get("order"); raw != "" {
		switch raw {
		case "asc":
			q.Order = contracts.SortAsc
		case "desc":
			q.Order = contracts.SortDesc
		default:
			return q, fmt.Errorf("order must be asc or desc")
		}
	}

	return q, nil
}

type optionBody struct {
	OptionName   string `json:"optionName"`
	DisplayOrder int    `json:"displayOrder"`
}

type variantOptionBody struct {
	OptionName   string `json:"optionName"`
	OptionValue  string `json:"optionValue"`
	DisplayOrder int    `json:"displayOrder"`
}

type variantBody struct {
	SKU          string              `json:"sku"`
	Barcode      *string             `json:"barcode"`
	ImageURL     *string             `json:"imageUrl"`
	Price        int64               `json:"price"`
	DisplayOrder int                 `json:"displayOrder"`
	Options      []variantOptionBody `json:"options"`
}

type imageBody struct {
	ImageURL     string  `json:"imageUrl"`
	DisplayOrder int     `json:"displayOrder"`
	VariantSKU   *string `json:"variantSku"`
}

type createProductBody struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CategoryID  string        `json:"categoryId"`
	Status      string        `json:"status"`
	Options     []optionBody  `json:"options"`
	Variants    []variantBody `json:"variants"`
	Images      []imageBody   `json:"images"`
}

// validateCreateProduct checks request-shape requirements; the business rules
// live in the domain constructors.
func validateCreateProduct(body *createProductBody) error {
	if body.Name == "" {
		return fmt.Errorf("name is required")
	}
	if body.CategoryID == "" {
		return fmt.Errorf("categoryId is required")
	}
	if body.Status == "" {
		return fmt.Errorf("status is required")
	}
	if len(body.Options) == 0 {
		return fmt.Errorf("at least one option is required")
	}
	for i, v := range body.Variants {
		if v.SKU == "" {
			return fmt.Errorf("variants[%d].sku is required", i)
		}
	}
	return nil
}

func (b *createProductBody) toRequest() create_product.Request {
	options := make([]create_product.OptionInput, 0, len(b.Options))
	for _, o := range b.Options {
		options = append(options, create_product.OptionInput{
			OptionName:   o.OptionName,
			DisplayOrder: o.DisplayOrder,
		})
	}

	variants := make([]create_product.VariantInput, 0, len(b.Variants))
	for _, v := range b.Variants {
		variantOptions := make([]create_product.VariantOptionInput, 0, len(v.Options))
		for _, vo := range v.Options {
			variantOptions = append(variantOptions, create_product.VariantOptionInput{
				OptionName:   vo.OptionName,
				OptionValue:  vo.OptionValue,
				DisplayOrder: vo.DisplayOrder,
			})
		}
		variants = append(variants, create_product.VariantInput{
			SKU:          v.SKU,
			Barcode:      v.Barcode,
			ImageURL:     v.ImageURL,
			Price:        v.Price,
			DisplayOrder: v.DisplayOrder,
			Options:      variantOptions,
		})
	}

	images := make([]create_product.ImageInput, 0, len(b.Images))
	for _, img := range b.Images {
		images = append(images, create_product.ImageInput{
			ImageURL:     img.ImageURL,
			DisplayOrder: img.DisplayOrder,
			VariantSKU:   img.VariantSKU,
		})
	}

	return create_product.Request{
		Name:        b.Name,
		Description: b.Description,
		CategoryID:  b.CategoryID,
		Status:      b.Status,
		Options:     options,
		Variants:    variants,
		Images:      images,
	}
}
