package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
	"github.com/shoplane/catalog-service/internal/models/m_product"
	"github.com/shoplane/catalog-service/internal/models/m_product_image"
	"github.com/shoplane/catalog-service/internal/models/m_product_option"
	"github.com/shoplane/catalog-service/internal/models/m_product_variant"
	"github.com/shoplane/catalog-service/internal/models/m_variant_option"
)

// ProductRepo is the Spanner implementation of the write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// The build*Values helpers are unexported so tests in this package can
// inspect the column maps without relying on spanner.Mutation internals.

func buildProductValues(p *domain.Product) map[string]interface{} {
	return m_product.BuildInsertMap(
		p.ID(),
		p.Name(),
		p.Description(),
		p.CategoryID(),
		string(p.Status()),
		p.CreatedAt().UTC(),
		p.UpdatedAt().UTC(),
	)
}

func buildOptionValues(o *domain.ProductOption) map[string]interface{} {
	return m_product_option.BuildInsertMap(
		o.ID(),
		o.ProductID(),
		o.OptionName(),
		int64(o.DisplayOrder()),
		o.CreatedAt().UTC(),
		o.UpdatedAt().UTC(),
	)
}

func buildVariantValues(v *domain.ProductVariant) map[string]interface{} {
	return m_product_variant.BuildInsertMap(
		v.ID(),
		v.ProductID(),
		v.SKU(),
		v.Barcode(),
		v.ImageURL(),
		v.Price().Amount(),
		int64(v.DisplayOrder()),
		v.CreatedAt().UTC(),
		v.UpdatedAt().UTC(),
	)
}

func buildVariantOptionValues(vo *domain.ProductVariantOption) map[string]interface{} {
	return m_variant_option.BuildInsertMap(
		vo.ID(),
		vo.ProductVariantID(),
		vo.OptionName(),
		vo.OptionValue(),
		int64(vo.DisplayOrder()),
		vo.CreatedAt().UTC(),
		vo.UpdatedAt().UTC(),
	)
}

func buildImageValues(img *domain.ProductImage) map[string]interface{} {
	return m_product_image.BuildInsertMap(
		img.ID(),
		img.ProductID(),
		img.ProductVariantID(),
		img.ImageURL(),
		int64(img.DisplayOrder()),
		img.CreatedAt().UTC(),
		img.UpdatedAt().UTC(),
	)
}

// InsertMuts expands a validated aggregate into insert mutations for the
// product row and all of its child rows.
func (r *ProductRepo) InsertMuts(d *domain.ProductDetails) []*spanner.Mutation {
	muts := make([]*spanner.Mutation, 0, 1+len(d.Product().Options())+len(d.Variants())+len(d.Images()))

	muts = append(muts, m_product.InsertMutation(buildProductValues(d.Product())))

	for _, o := range d.Product().Options() {
		muts = append(muts, m_product_option.InsertMutation(buildOptionValues(o)))
	}

	for _, v := range d.Variants() {
		muts = append(muts, m_product_variant.InsertMutation(buildVariantValues(v)))
		for _, vo := range v.Options() {
			muts = append(muts, m_variant_option.InsertMutation(buildVariantOptionValues(vo)))
		}
	}

	for _, img := range d.Images() {
		muts = append(muts, m_product_image.InsertMutation(buildImageValues(img)))
	}

	return muts
}
