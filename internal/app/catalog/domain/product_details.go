package domain

// ProductAggregate is the plain composite a repository assembles from joined
// rows: a product with its variants and images attached. It carries no
// invariants of its own; ProductDetails is the validated form.
type ProductAggregate struct {
	Product  *Product
	Variants []*ProductVariant
	Images   []*ProductImage
}

// ProductDetails is the aggregate root over one product, its variants and its
// images. Construction is all-or-nothing: either every cross-entity rule
// passes and an immutable aggregate is returned, or the first violated rule's
// error is returned.
type ProductDetails struct {
	product  *Product
	variants []*ProductVariant
	images   []*ProductImage
}

// NewProductDetails validates and composes the aggregate. Rules run in order:
//
//  1. a published product has at least one variant
//  2. options defined but no variant realizes them
//  3. variants present but no option axis defined
//  4. every variant option name is one of the product's option axes
//  5. SKUs are pairwise distinct
//  6. non-nil barcodes are pairwise distinct
//
// The publish rule runs first: a published product with no variants is a
// broken storefront entry whatever else is wrong with it.
func NewProductDetails(product *Product, variants []*ProductVariant, images []*ProductImage) (*ProductDetails, error) {
	if product.IsPublished() && len(variants) == 0 {
		return nil, ErrPublishedWithoutVariants
	}

	if len(product.Options()) > 0 && len(variants) == 0 {
		return nil, ErrOptionsWithoutVariants
	}
	if len(variants) > 0 && len(product.Options()) == 0 {
		return nil, ErrVariantsWithoutOptions
	}

	for _, v := range variants {
		for _, vo := range v.Options() {
			if !product.HasOptionName(vo.OptionName()) {
				return nil, ErrUnknownVariantOption
			}
		}
	}

	seenSKUs := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if _, dup := seenSKUs[v.SKU()]; dup {
			return nil, ErrDuplicateSKU
		}
		seenSKUs[v.SKU()] = struct{}{}
	}

	seenBarcodes := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if v.Barcode() == nil {
			continue
		}
		if _, dup := seenBarcodes[*v.Barcode()]; dup {
			return nil, ErrDuplicateBarcode
		}
		seenBarcodes[*v.Barcode()] = struct{}{}
	}

	return &ProductDetails{
		product:  product,
		variants: variants,
		images:   images,
	}, nil
}

func (d *ProductDetails) Product() *Product {
	return d.product
}

func (d *ProductDetails) Variants() []*ProductVariant {
	return d.variants
}

func (d *ProductDetails) Images() []*ProductImage {
	return d.images
}
