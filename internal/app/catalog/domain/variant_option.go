package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ProductVariantOption binds a variant to one value on an option axis,
// e.g. "Size" = "M".
type ProductVariantOption struct {
	id               string
	productVariantID string
	optionName       string
	optionValue      string
	displayOrder     int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewProductVariantOption creates a ProductVariantOption. Option name and
// value are trimmed before validation and the trimmed values are stored.
func NewProductVariantOption(id, productVariantID, optionName, optionValue string,
	displayOrder int, createdAt, updatedAt time.Time) (*ProductVariantOption, error) {

	trimmedName := strings.TrimSpace(optionName)
	if trimmedName == "" {
		return nil, ErrEmptyOptionName
	}
	if utf8.RuneCountInString(trimmedName) > MaxOptionNameLength {
		return nil, ErrOptionNameTooLong
	}

	trimmedValue := strings.TrimSpace(optionValue)
	if trimmedValue == "" {
		return nil, ErrEmptyOptionValue
	}
	if utf8.RuneCountInString(trimmedValue) > MaxOptionValueLength {
		return nil, ErrOptionValueTooLong
	}

	if displayOrder < 0 {
		return nil, ErrNegativeDisplayOrder
	}

	return &ProductVariantOption{
		id:               id,
		productVariantID: productVariantID,
		optionName:       trimmedName,
		optionValue:      trimmedValue,
		displayOrder:     displayOrder,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (vo *ProductVariantOption) ID() string {
	return vo.id
}

func (vo *ProductVariantOption) ProductVariantID() string {
	return vo.productVariantID
}

func (vo *ProductVariantOption) OptionName() string {
	return vo.optionName
}

func (vo *ProductVariantOption) OptionValue() string {
	return vo.optionValue
}

func (vo *ProductVariantOption) DisplayOrder() int {
	return vo.displayOrder
}

func (vo *ProductVariantOption) CreatedAt() time.Time {
	return vo.createdAt
}

func (vo *ProductVariantOption) UpdatedAt() time.Time {
	return vo.updatedAt
}
