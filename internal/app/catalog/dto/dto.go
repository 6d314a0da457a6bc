package dto

// Transport-facing response shapes. Timestamps are RFC3339 strings; money
// amounts are raw integers.

// CategoryNodeDTO is one node of the category tree response.
type CategoryNodeDTO struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	ParentID     *string            `json:"parentId"`
	DisplayOrder int                `json:"displayOrder"`
	CreatedAt    string             `json:"createdAt"`
	UpdatedAt    string             `json:"updatedAt"`
	Children     []*CategoryNodeDTO `json:"children"`
}

// CategoryListResponse wraps the reconstructed category tree.
type CategoryListResponse struct {
	Categories []*CategoryNodeDTO `json:"categories"`
}

// PaginationDTO describes one page of a listing.
type PaginationDTO struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// ProductListItemDTO is one storefront listing row.
type ProductListItemDTO struct {
	ProductID         string  `json:"productId"`
	Name              string  `json:"name"`
	CategoryID        string  `json:"categoryId"`
	CategoryName      string  `json:"categoryName"`
	ThumbnailImageURL *string `json:"thumbnailImageUrl"`
	MinPrice          int64   `json:"minPrice"`
	MaxPrice          int64   `json:"maxPrice"`
}

// ProductListResponse is the storefront listing page.
type ProductListResponse struct {
	Items      []*ProductListItemDTO `json:"items"`
	Pagination PaginationDTO         `json:"pagination"`
}

// AdminProductListItemDTO is one admin listing row. Prices are null until the
// product has a variant.
type AdminProductListItemDTO struct {
	ProductID         string  `json:"productId"`
	Name              string  `json:"name"`
	Status            string  `json:"status"`
	CategoryID        string  `json:"categoryId"`
	CategoryName      string  `json:"categoryName"`
	ThumbnailImageURL *string `json:"thumbnailImageUrl"`
	MinPrice          *int64  `json:"minPrice"`
	MaxPrice          *int64  `json:"maxPrice"`
	VariantCount      int     `json:"variantCount"`
	IsPublishable     bool    `json:"isPublishable"`
}

// AdminProductListResponse is the admin listing page with derived status counts.
type AdminProductListResponse struct {
	Items          []*AdminProductListItemDTO `json:"items"`
	Pagination     PaginationDTO              `json:"pagination"`
	DraftCount     int                        `json:"draftCount"`
	PublishedCount int                        `json:"publishedCount"`
}

// ProductOptionDTO is one option axis of a product.
type ProductOptionDTO struct {
	ID           string `json:"id"`
	OptionName   string `json:"optionName"`
	DisplayOrder int    `json:"displayOrder"`
}

// VariantOptionDTO is one option value bound to a variant.
type VariantOptionDTO struct {
	ID           string `json:"id"`
	OptionName   string `json:"optionName"`
	OptionValue  string `json:"optionValue"`
	DisplayOrder int    `json:"displayOrder"`
}

// ProductVariantDTO is one purchasable variant of a product.
type ProductVariantDTO struct {
	ID           string              `json:"id"`
	SKU          string              `json:"sku"`
	Barcode      *string             `json:"barcode"`
	ImageURL     *string             `json:"imageUrl"`
	Price        int64               `json:"price"`
	DisplayOrder int                 `json:"displayOrder"`
	Options      []*VariantOptionDTO `json:"options"`
}

// ProductImageDTO is one image attached to a product.
type ProductImageDTO struct {
	ID               string  `json:"id"`
	ProductVariantID *string `json:"productVariantId"`
	ImageURL         string  `json:"imageUrl"`
	DisplayOrder     int     `json:"displayOrder"`
}

// ProductDetailsDTO mirrors a full product aggregate. Returned by the detail
// query and echoed back by create.
type ProductDetailsDTO struct {
	ProductID   string               `json:"productId"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	CategoryID  string               `json:"categoryId"`
	Status      string               `json:"status"`
	Options     []*ProductOptionDTO  `json:"options"`
	Variants    []*ProductVariantDTO `json:"variants"`
	Images      []*ProductImageDTO   `json:"images"`
	CreatedAt   string               `json:"createdAt"`
	UpdatedAt   string               `json:"updatedAt"`
}
