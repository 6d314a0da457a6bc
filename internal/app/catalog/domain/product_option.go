package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ProductOption defines one axis of variation for a product, e.g. "Size".
type ProductOption struct {
	id           string
	productID    string
	optionName   string
	displayOrder int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewProductOption creates a ProductOption. The option name is trimmed before
// validation and the trimmed value is stored.
func NewProductOption(id, productID, optionName string, displayOrder int, createdAt, updatedAt time.Time) (*ProductOption, error) {
	trimmed := strings.TrimSpace(optionName)
	if trimmed == "" {
		return nil, ErrEmptyOptionName
	}
	if utf8.RuneCountInString(trimmed) > MaxOptionNameLength {
		return nil, ErrOptionNameTooLong
	}
	if displayOrder < 0 {
		return nil, ErrNegativeDisplayOrder
	}

	return &ProductOption{
		id:           id,
		productID:    productID,
		optionName:   trimmed,
		displayOrder: displayOrder,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (o *ProductOption) ID() string {
	return o.id
}

func (o *ProductOption) ProductID() string {
	return o.productID
}

func (o *ProductOption) OptionName() string {
	return o.optionName
}

func (o *ProductOption) DisplayOrder() int {
	return o.displayOrder
}

func (o *ProductOption) CreatedAt() time.Time {
	return o.createdAt
}

func (o *ProductOption) UpdatedAt() time.Time {
	return o.updatedAt
}
