package domain

import (
	"time"
	"unicode/utf8"
)

// ProductImage is an image attached to a product, optionally scoped to one
// of its variants.
type ProductImage struct {
	id               string
	productID        string
	productVariantID *string
	imageURL         string
	displayOrder     int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewProductImage creates a ProductImage.
func NewProductImage(id, productID string, productVariantID *string, imageURL string,
	displayOrder int, createdAt, updatedAt time.Time) (*ProductImage, error) {

	if productID == "" {
		return nil, ErrEmptyProductID
	}
	if imageURL == "" {
		return nil, ErrEmptyImageURL
	}
	if utf8.RuneCountInString(imageURL) > MaxImageURLLength {
		return nil, ErrImageURLTooLong
	}
	if displayOrder < MinImageDisplayOrder {
		return nil, ErrImageDisplayOrderRange
	}

	return &ProductImage{
		id:               id,
		productID:        productID,
		productVariantID: productVariantID,
		imageURL:         imageURL,
		displayOrder:     displayOrder,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (i *ProductImage) ID() string {
	return i.id
}

func (i *ProductImage) ProductID() string {
	return i.productID
}

func (i *ProductImage) ProductVariantID() *string {
	return i.productVariantID
}

func (i *ProductImage) ImageURL() string {
	return i.imageURL
}

func (i *ProductImage) DisplayOrder() int {
	return i.displayOrder
}

func (i *ProductImage) CreatedAt() time.Time {
	return i.createdAt
}

func (i *ProductImage) UpdatedAt() time.Time {
	return i.updatedAt
}
