package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("cat-1", "Shoes", nil, 0, testTime, testTime)
	require.NoError(t, err)

	assert.Equal(t, "cat-1", c.ID())
	assert.Equal(t, "Shoes", c.Name())
	assert.Nil(t, c.ParentID())
	assert.True(t, c.IsRoot())
	assert.Equal(t, 0, c.DisplayOrder())
	assert.Equal(t, testTime, c.CreatedAt())
}

// The trimmed value is stored; surrounding whitespace never changes validity.
func TestNewCategory_TrimsName(t *testing.T) {
	c, err := NewCategory("cat-1", "  Shoes  ", nil, 0, testTime, testTime)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", c.Name())

	_, err = NewCategory("cat-1", "   ", nil, 0, testTime, testTime)
	assert.ErrorIs(t, err, ErrEmptyCategoryName)
}

func TestNewCategory_NameLengthBoundary(t *testing.T) {
	_, err := NewCategory("cat-1", strings.Repeat("A", 50), nil, 0, testTime, testTime)
	assert.NoError(t, err)

	_, err = NewCategory("cat-1", strings.Repeat("A", 51), nil, 0, testTime, testTime)
	assert.ErrorIs(t, err, ErrCategoryNameTooLong)

	// Limits count characters, not bytes.
	_, err = NewCategory("cat-1", strings.Repeat("あ", 50), nil, 0, testTime, testTime)
	assert.NoError(t, err)
}

func TestNewCategory_Rejections(t *testing.T) {
	_, err := NewCategory("cat-1", "Shoes", nil, -1, testTime, testTime)
	assert.ErrorIs(t, err, ErrNegativeDisplayOrder)

	self := "cat-1"
	_, err = NewCategory("cat-1", "Shoes", &self, 0, testTime, testTime)
	assert.ErrorIs(t, err, ErrCategorySelfParent)
}

func TestNewCategory_WithParent(t *testing.T) {
	parent := "cat-root"
	c, err := NewCategory("cat-2", "Sneakers", &parent, 3, testTime, testTime)
	require.NoError(t, err)

	assert.False(t, c.IsRoot())
	require.NotNil(t, c.ParentID())
	assert.Equal(t, "cat-root", *c.ParentID())
}
