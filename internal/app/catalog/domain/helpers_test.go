package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string {
	return &s
}

func mustMoney(t *testing.T, amount int64) Money {
	t.Helper()
	m, err := NewMoney(amount)
	require.NoError(t, err)
	return m
}

func mustCategory(t *testing.T, id, name string, parentID *string, displayOrder int) *Category {
	t.Helper()
	c, err := NewCategory(id, name, parentID, displayOrder, testTime, testTime)
	require.NoError(t, err)
	return c
}

func mustOption(t *testing.T, productID, name string) *ProductOption {
	t.Helper()
	o, err := NewProductOption("opt-"+name, productID, name, 0, testTime, testTime)
	require.NoError(t, err)
	return o
}

func mustProduct(t *testing.T, id string, status ProductStatus, options []*ProductOption) *Product {
	t.Helper()
	p, err := NewProduct(id, "Basic Tee", "A plain cotton t-shirt.", "cat-1", status, options, testTime, testTime)
	require.NoError(t, err)
	return p
}

func mustVariantOption(t *testing.T, variantID, name, value string) *ProductVariantOption {
	t.Helper()
	vo, err := NewProductVariantOption("vo-"+variantID+"-"+name, variantID, name, value, 0, testTime, testTime)
	require.NoError(t, err)
	return vo
}

// mustVariant builds a valid variant carrying a single "Size" option value.
func mustVariant(t *testing.T, id, productID, sku string, price int64) *ProductVariant {
	t.Helper()
	vo := mustVariantOption(t, id, "Size", "M")
	v, err := NewProductVariant(id, productID, sku, nil, nil, mustMoney(t, price), 0,
		[]*ProductVariantOption{vo}, testTime, testTime)
	require.NoError(t, err)
	return v
}

func mustImage(t *testing.T, id, productID, url string, displayOrder int) *ProductImage {
	t.Helper()
	img, err := NewProductImage(id, productID, nil, url, displayOrder, testTime, testTime)
	require.NoError(t, err)
	return img
}
