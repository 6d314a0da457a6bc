package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	skuPattern = regexp.MustCompile(`^[A-Za-z0-9\-_]+$`)

	// JAN/CODE39 superset: letters, digits, hyphen, dot, dollar, slash,
	// plus, percent and space.
	barcodePattern = regexp.MustCompile(`^[A-Za-z0-9\-.$/ +%]+$`)
)

// ProductVariant is a concrete purchasable SKU within a product.
type ProductVariant struct {
	id           string
	productID    string
	sku          string
	barcode      *string
	imageURL     *string
	price        Money
	displayOrder int
	options      []*ProductVariantOption
	createdAt    time.Time
	updatedAt    time.Time
}

// NewProductVariant creates a ProductVariant. The SKU is trimmed before
// validation and the trimmed value is stored.
func NewProductVariant(id, productID, sku string, barcode, imageURL *string, price Money,
	displayOrder int, options []*ProductVariantOption, createdAt, updatedAt time.Time) (*ProductVariant, error) {

	trimmedSKU := strings.TrimSpace(sku)
	if trimmedSKU == "" {
		return nil, ErrEmptySKU
	}
	if utf8.RuneCountInString(trimmedSKU) > MaxSKULength {
		return nil, ErrSKUTooLong
	}
	if !skuPattern.MatchString(trimmedSKU) {
		return nil, ErrInvalidSKUFormat
	}

	if barcode != nil {
		if utf8.RuneCountInString(*barcode) > MaxBarcodeLength {
			return nil, ErrBarcodeTooLong
		}
		if !barcodePattern.MatchString(*barcode) {
			return nil, ErrInvalidBarcodeFormat
		}
	}

	if imageURL != nil && utf8.RuneCountInString(*imageURL) > MaxImageURLLength {
		return nil, ErrImageURLTooLong
	}

	if price.Amount() >= MaxVariantPrice {
		return nil, ErrPriceOutOfRange
	}

	if displayOrder < 0 || displayOrder > MaxVariantDisplayOrder {
		return nil, ErrVariantDisplayOrderRange
	}

	if len(options) < MinVariantOptions {
		return nil, ErrNoVariantOptions
	}
	if len(options) > MaxVariantOptions {
		return nil, ErrTooManyVariantOptions
	}

	return &ProductVariant{
		id:           id,
		productID:    productID,
		sku:          trimmedSKU,
		barcode:      barcode,
		imageURL:     imageURL,
		price:        price,
		displayOrder: displayOrder,
		options:      options,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (v *ProductVariant) ID() string {
	return v.id
}

func (v *ProductVariant) ProductID() string {
	return v.productID
}

func (v *ProductVariant) SKU() string {
	return v.sku
}

func (v *ProductVariant) Barcode() *string {
	return v.barcode
}

func (v *ProductVariant) ImageURL() *string {
	return v.imageURL
}

func (v *ProductVariant) Price() Money {
	return v.price
}

func (v *ProductVariant) DisplayOrder() int {
	return v.displayOrder
}

func (v *ProductVariant) Options() []*ProductVariantOption {
	return v.options
}

func (v *ProductVariant) CreatedAt() time.Time {
	return v.createdAt
}

func (v *ProductVariant) UpdatedAt() time.Time {
	return v.updatedAt
}
