package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Category is a node in the catalog's category hierarchy.
// A nil parentID marks a root category.
type Category struct {
	id           string
	name         string
	parentID     *string
	displayOrder int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCategory creates a Category. The name is trimmed before validation and
// the trimmed value is stored.
func NewCategory(id, name string, parentID *string, displayOrder int, createdAt, updatedAt time.Time) (*Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyCategoryName
	}
	if utf8.RuneCountInString(trimmed) > MaxCategoryNameLength {
		return nil, ErrCategoryNameTooLong
	}
	if displayOrder < 0 {
		return nil, ErrNegativeDisplayOrder
	}
	if parentID != nil && *parentID == id {
		return nil, ErrCategorySelfParent
	}

	return &Category{
		id:           id,
		name:         trimmed,
		parentID:     parentID,
		displayOrder: displayOrder,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Category) ID() string {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) ParentID() *string {
	return c.parentID
}

// IsRoot returns true when the category has no parent.
func (c *Category) IsRoot() bool {
	return c.parentID == nil
}

func (c *Category) DisplayOrder() int {
	return c.displayOrder
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}
