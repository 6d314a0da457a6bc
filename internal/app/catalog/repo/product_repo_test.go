package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
	"github.com/shoplane/catalog-service/internal/models/m_product"
	"github.com/shoplane/catalog-service/internal/models/m_product_variant"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func buildDetails(t *testing.T) *domain.ProductDetails {
	t.Helper()

	option, err := domain.NewProductOption("opt-1", "prod-1", "Size", 0, testTime, testTime)
	require.NoError(t, err)

	product, err := domain.NewProduct("prod-1", "Basic Tee", "A plain cotton t-shirt.", "cat-1",
		domain.ProductStatusDraft, []*domain.ProductOption{option}, testTime, testTime)
	require.NoError(t, err)

	price, err := domain.NewMoney(2000)
	require.NoError(t, err)

	vo, err := domain.NewProductVariantOption("vo-1", "var-1", "Size", "M", 0, testTime, testTime)
	require.NoError(t, err)

	barcode := "4901234567894"
	variant, err := domain.NewProductVariant("var-1", "prod-1", "TEE-M", &barcode, nil,
		price, 0, []*domain.ProductVariantOption{vo}, testTime, testTime)
	require.NoError(t, err)

	image, err := domain.NewProductImage("img-1", "prod-1", nil,
		"https://cdn.example.com/tee.jpg", 1, testTime, testTime)
	require.NoError(t, err)

	details, err := domain.NewProductDetails(product,
		[]*domain.ProductVariant{variant}, []*domain.ProductImage{image})
	require.NoError(t, err)
	return details
}

func TestBuildProductValues(t *testing.T) {
	d := buildDetails(t)

	values := buildProductValues(d.Product())

	assert.Equal(t, "prod-1", values[m_product.ColProductID])
	assert.Equal(t, "Basic Tee", values[m_product.ColName])
	assert.Equal(t, "A plain cotton t-shirt.", values[m_product.ColDescription])
	assert.Equal(t, "cat-1", values[m_product.ColCategoryID])
	assert.Equal(t, "draft", values[m_product.ColStatus])
	assert.Equal(t, testTime, values[m_product.ColCreatedAt])
	assert.Len(t, values, 7)
}

func TestBuildVariantValues(t *testing.T) {
	d := buildDetails(t)

	values := buildVariantValues(d.Variants()[0])

	assert.Equal(t, "var-1", values[m_product_variant.ColVariantID])
	assert.Equal(t, "prod-1", values[m_product_variant.ColProductID])
	assert.Equal(t, "TEE-M", values[m_product_variant.ColSKU])
	assert.Equal(t, int64(2000), values[m_product_variant.ColPrice])
	assert.Equal(t, int64(0), values[m_product_variant.ColDisplayOrder])
	require.Contains(t, values, m_product_variant.ColBarcode)
	assert.Len(t, values, 9)
}

func TestInsertMuts(t *testing.T) {
	d := buildDetails(t)

	muts := NewProductRepo().InsertMuts(d)

	// product + 1 option + 1 variant + 1 variant option + 1 image.
	require.Len(t, muts, 5)
	for _, m := range muts {
		assert.NotNil(t, m)
	}
}
