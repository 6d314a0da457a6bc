package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ProductStatus represents the lifecycle state of a product.
type ProductStatus string

const (
	// ProductStatusDraft indicates a product that is being prepared.
	ProductStatusDraft ProductStatus = "draft"

	// ProductStatusPublished indicates a product visible on the storefront.
	ProductStatusPublished ProductStatus = "published"

	// ProductStatusArchived indicates a product that has been soft-deleted.
	ProductStatusArchived ProductStatus = "archived"
)

// ParseProductStatus converts a raw string into a ProductStatus.
func ParseProductStatus(s string) (ProductStatus, error) {
	switch ProductStatus(s) {
	case ProductStatusDraft, ProductStatusPublished, ProductStatusArchived:
		return ProductStatus(s), nil
	}
	return "", ErrInvalidProductStatus
}

// Product is a catalog entry. Every product declares between 1 and 5 option
// axes; a simple product still carries a placeholder option slot.
type Product struct {
	id          string
	name        string
	description string
	categoryID  string
	status      ProductStatus
	options     []*ProductOption
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProduct creates a Product. Name and description are trimmed before
// validation and the trimmed values are stored.
func NewProduct(id, name, description, categoryID string, status ProductStatus,
	options []*ProductOption, createdAt, updatedAt time.Time) (*Product, error) {

	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return nil, ErrEmptyProductName
	}
	if utf8.RuneCountInString(trimmedName) > MaxProductNameLength {
		return nil, ErrProductNameTooLong
	}

	trimmedDesc := strings.TrimSpace(description)
	if trimmedDesc == "" {
		return nil, ErrEmptyProductDescription
	}
	if utf8.RuneCountInString(trimmedDesc) > MaxProductDescriptionLength {
		return nil, ErrProductDescriptionTooLong
	}

	if categoryID == "" {
		return nil, ErrEmptyCategoryID
	}
	if _, err := ParseProductStatus(string(status)); err != nil {
		return nil, err
	}
	if len(options) < MinProductOptions {
		return nil, ErrNoProductOptions
	}
	if len(options) > MaxProductOptions {
		return nil, ErrTooManyProductOptions
	}

	return &Product{
		id:          id,
		name:        trimmedName,
		description: trimmedDesc,
		categoryID:  categoryID,
		status:      status,
		options:     options,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) CategoryID() string {
	return p.categoryID
}

func (p *Product) Status() ProductStatus {
	return p.status
}

func (p *Product) Options() []*ProductOption {
	return p.options
}

// HasOptionName returns true if name matches one of the product's option axes.
func (p *Product) HasOptionName(name string) bool {
	for _, o := range p.options {
		if o.OptionName() == name {
			return true
		}
	}
	return false
}

// IsPublished returns true if the product is visible on the storefront.
func (p *Product) IsPublished() bool {
	return p.status == ProductStatusPublished
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}
