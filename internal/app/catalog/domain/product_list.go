package domain

// ProductListItem is the storefront read projection: one product joined with
// its category, images and variants, annotated with a thumbnail and a price
// range. The storefront policy requires at least one variant.
type ProductListItem struct {
	product      *Product
	category     *Category
	thumbnailURL *string
	minPrice     Money
	maxPrice     Money
	variantCount int
}

// NewProductListItem validates and builds a storefront list item.
func NewProductListItem(product *Product, category *Category, images []*ProductImage, variants []*ProductVariant) (*ProductListItem, error) {
	for _, v := range variants {
		if v.ProductID() != product.ID() {
			return nil, ErrVariantProductMismatch
		}
	}
	if len(variants) == 0 {
		return nil, ErrNoVariants
	}
	if len(variants) > MaxVariantsPerItem {
		return nil, ErrTooManyVariants
	}

	minPrice, maxPrice := priceRange(variants)

	return &ProductListItem{
		product:      product,
		category:     category,
		thumbnailURL: thumbnailURL(images),
		minPrice:     minPrice,
		maxPrice:     maxPrice,
		variantCount: len(variants),
	}, nil
}

func (li *ProductListItem) Product() *Product {
	return li.product
}

func (li *ProductListItem) Category() *Category {
	return li.category
}

func (li *ProductListItem) ThumbnailImageURL() *string {
	return li.thumbnailURL
}

func (li *ProductListItem) MinPrice() Money {
	return li.minPrice
}

func (li *ProductListItem) MaxPrice() Money {
	return li.maxPrice
}

func (li *ProductListItem) VariantCount() int {
	return li.variantCount
}

// ProductList is a bounded page of storefront list items.
type ProductList struct {
	items []*ProductListItem
}

// NewProductList validates the page size bound.
func NewProductList(items []*ProductListItem) (*ProductList, error) {
	if len(items) > MaxListItems {
		return nil, ErrTooManyListItems
	}
	return &ProductList{items: items}, nil
}

func (l *ProductList) Items() []*ProductListItem {
	return l.items
}

// thumbnailURL picks the image with the smallest display order. Ties resolve
// to the earliest input element.
func thumbnailURL(images []*ProductImage) *string {
	if len(images) == 0 {
		return nil
	}
	best := images[0]
	for _, img := range images[1:] {
		if img.DisplayOrder() < best.DisplayOrder() {
			best = img
		}
	}
	url := best.ImageURL()
	return &url
}

// priceRange computes min and max over the variant prices.
// Callers guarantee variants is non-empty.
func priceRange(variants []*ProductVariant) (Money, Money) {
	minPrice := variants[0].Price()
	maxPrice := variants[0].Price()
	for _, v := range variants[1:] {
		if v.Price().LessThan(minPrice) {
			minPrice = v.Price()
		}
		if v.Price().GreaterThan(maxPrice) {
			maxPrice = v.Price()
		}
	}
	return minPrice, maxPrice
}
