package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductDetails(t *testing.T) {
	opts := []*ProductOption{mustOption(t, "prod-1", "Size")}
	product := mustProduct(t, "prod-1", ProductStatusPublished, opts)
	variants := []*ProductVariant{
		mustVariant(t, "var-1", "prod-1", "TEE-S", 2000),
		mustVariant(t, "var-2", "prod-1", "TEE-M", 2200),
	}
	images := []*ProductImage{mustImage(t, "img-1", "prod-1", "https://cdn.example.com/tee.jpg", 1)}

	d, err := NewProductDetails(product, variants, images)
	require.NoError(t, err)

	assert.Equal(t, product, d.Product())
	assert.Len(t, d.Variants(), 2)
	assert.Len(t, d.Images(), 1)
}

// A draft with declared options but no variants is incomplete.
func TestNewProductDetails_OptionsWithoutVariants(t *testing.T) {
	opts := []*ProductOption{mustOption(t, "prod-1", "Size")}
	product := mustProduct(t, "prod-1", ProductStatusDraft, opts)

	_, err := NewProductDetails(product, nil, nil)
	assert.ErrorIs(t, err, ErrOptionsWithoutVariants)
}

// Publishing without a variant fails with the publish error even though the
// options/variants coherence rule would also fire.
func TestNewProductDetails_PublishedWithoutVariants(t *testing.T) {
	opts := []*ProductOption{mustOption(t, "prod-1", "Size")}
	product := mustProduct(t, "prod-1", ProductStatusPublished, opts)

	_, err := NewProductDetails(product, nil, nil)
	assert.ErrorIs(t, err, ErrPublishedWithoutVariants)
}

func TestNewProductDetails_UnknownVariantOption(t *testing.T) {
	opts := []*ProductOption{mustOption(t, "prod-1", "Size")}
	product := mustProduct(t, "prod-1", ProductStatusDraft, opts)

	vo := mustVariantOption(t, "var-1", "Color", "Red")
	v, err := NewProductVariant("var-1", "prod-1", "TEE-RED", nil, nil,
		mustMoney(t, 2000), 0, []*ProductVariantOption{vo}, testTime, testTime)
	require.NoError(t, err)

	_, err = NewProductDetails(product, []*ProductVariant{v}, nil)
	assert.ErrorIs(t, err, ErrUnknownVariantOption)
}

func TestNewProductDetails_DuplicateSKU(t *testing.T) {
	opts := []*ProductOption{mustOption(t, "prod-1", "Size")}
	product := mustProduct(t, "prod-1", ProductStatusDraft, opts)
	variants := []*ProductVariant{
		mustVariant(t, "var-1", "prod-1", "A-1", 2000),
		mustVariant(t, "var-2", "prod-1", "A-1", 2200),
	}

	_, err := NewProductDetails(product, variants, nil)
	assert.ErrorIs(t, err, ErrDuplicateSKU)
	assert.EqualError(t, err, "variants must have unique skus")
}

func TestNewProductDetails_DuplicateBarcode(t *testing.T) {
	opts := []*ProductOption{mustOption(t, "prod-1", "Size")}
	product := mustProduct(t, "prod-1", ProductStatusDraft, opts)

	barcode := "4901234567894"
	mkVariant := func(id, sku string) *ProductVariant {
		vo := mustVariantOption(t, id, "Size", "M")
		v, err := NewProductVariant(id, "prod-1", sku, &barcode, nil,
			mustMoney(t, 2000), 0, []*ProductVariantOption{vo}, testTime, testTime)
		require.NoError(t, err)
		return v
	}

	_, err := NewProductDetails(product,
		[]*ProductVariant{mkVariant("var-1", "A-1"), mkVariant("var-2", "A-2")}, nil)
	assert.ErrorIs(t, err, ErrDuplicateBarcode)
}

// Nil barcodes never collide with each other.
func TestNewProductDetails_NilBarcodesAllowed(t *testing.T) {
	opts := []*ProductOption{mustOption(t, "prod-1", "Size")}
	product := mustProduct(t, "prod-1", ProductStatusDraft, opts)
	variants := []*ProductVariant{
		mustVariant(t, "var-1", "prod-1", "A-1", 2000),
		mustVariant(t, "var-2", "prod-1", "A-2", 2200),
	}

	_, err := NewProductDetails(product, variants, nil)
	assert.NoError(t, err)
}
