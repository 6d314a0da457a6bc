package dto

import (
	"time"

	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
)

// FromCategoryNode maps a validated tree node (and its subtree) to its DTO.
func FromCategoryNode(n *domain.CategoryTreeNode) *CategoryNodeDTO {
	children := make([]*CategoryNodeDTO, 0, len(n.Children()))
	for _, child := range n.Children() {
		children = append(children, FromCategoryNode(child))
	}

	c := n.Category()
	return &CategoryNodeDTO{
		ID:           c.ID(),
		Name:         c.Name(),
		ParentID:     c.ParentID(),
		DisplayOrder: c.DisplayOrder(),
		CreatedAt:    c.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt().UTC().Format(time.RFC3339),
		Children:     children,
	}
}

// FromCategoryTree maps the whole tree to the list response.
func FromCategoryTree(t *domain.CategoryTree) *CategoryListResponse {
	categories := make([]*CategoryNodeDTO, 0, len(t.Roots()))
	for _, root := range t.Roots() {
		categories = append(categories, FromCategoryNode(root))
	}
	return &CategoryListResponse{Categories: categories}
}

// NewPagination computes the page descriptor; totalPages = ceil(total/perPage).
func NewPagination(page, perPage int, total int64) PaginationDTO {
	totalPages := (total + int64(perPage) - 1) / int64(perPage)
	return PaginationDTO{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromProductListItem maps a storefront projection to its DTO.
func FromProductListItem(li *domain.ProductListItem) *ProductListItemDTO {
	return &ProductListItemDTO{
		ProductID:         li.Product().ID(),
		Name:              li.Product().Name(),
		CategoryID:        li.Category().ID(),
		CategoryName:      li.Category().Name(),
		ThumbnailImageURL: li.ThumbnailImageURL(),
		MinPrice:          li.MinPrice().Amount(),
		MaxPrice:          li.MaxPrice().Amount(),
	}
}

// FromAdminProductListItem maps an admin projection to its DTO.
func FromAdminProductListItem(li *domain.AdminProductListItem) *AdminProductListItemDTO {
	var minPrice, maxPrice *int64
	if li.MinPrice() != nil {
		v := li.MinPrice().Amount()
		minPrice = &v
	}
	if li.MaxPrice() != nil {
		v := li.MaxPrice().Amount()
		maxPrice = &v
	}

	return &AdminProductListItemDTO{
		ProductID:         li.Product().ID(),
		Name:              li.Product().Name(),
		Status:            string(li.Product().Status()),
		CategoryID:        li.Category().ID(),
		CategoryName:      li.Category().Name(),
		ThumbnailImageURL: li.ThumbnailImageURL(),
		MinPrice:          minPrice,
		MaxPrice:          maxPrice,
		VariantCount:      li.VariantCount(),
		IsPublishable:     li.IsPublishable(),
	}
}

// FromProductDetails maps a validated aggregate to the detail response.
func FromProductDetails(d *domain.ProductDetails) *ProductDetailsDTO {
	p := d.Product()

	options := make([]*ProductOptionDTO, 0, len(p.Options()))
	for _, o := range p.Options() {
		options = append(options, &ProductOptionDTO{
			ID:           o.ID(),
			OptionName:   o.OptionName(),
			DisplayOrder: o.DisplayOrder(),
		})
	}

	variants := make([]*ProductVariantDTO, 0, len(d.Variants()))
	for _, v := range d.Variants() {
		variantOptions := make([]*VariantOptionDTO, 0, len(v.Options()))
		for _, vo := range v.Options() {
			variantOptions = append(variantOptions, &VariantOptionDTO{
				ID:           vo.ID(),
				OptionName:   vo.OptionName(),
				OptionValue:  vo.OptionValue(),
				DisplayOrder: vo.DisplayOrder(),
			})
		}
		variants = append(variants, &ProductVariantDTO{
			ID:           v.ID(),
			SKU:          v.SKU(),
			Barcode:      v.Barcode(),
			ImageURL:     v.ImageURL(),
			Price:        v.Price().Amount(),
			DisplayOrder: v.DisplayOrder(),
			Options:      variantOptions,
		})
	}

	images := make([]*ProductImageDTO, 0, len(d.Images()))
	for _, img := range d.Images() {
		images = append(images, &ProductImageDTO{
			ID:               img.ID(),
			ProductVariantID: img.ProductVariantID(),
			ImageURL:         img.ImageURL(),
			DisplayOrder:     img.DisplayOrder(),
		})
	}

	return &ProductDetailsDTO{
		ProductID:   p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CategoryID:  p.CategoryID(),
		Status:      string(p.Status()),
		Options:     options,
		Variants:    variants,
		Images:      images,
		CreatedAt:   p.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
