package domain

// AdminProductListItem is the admin read projection. Unlike the storefront
// item it tolerates products without variants: the price range is nil/nil
// when no variant exists yet.
type AdminProductListItem struct {
	product      *Product
	category     *Category
	thumbnailURL *string
	minPrice     *Money
	maxPrice     *Money
	variantCount int
}

// NewAdminProductListItem validates and builds an admin list item.
func NewAdminProductListItem(product *Product, category *Category, images []*ProductImage, variants []*ProductVariant) (*AdminProductListItem, error) {
	for _, v := range variants {
		if v.ProductID() != product.ID() {
			return nil, ErrVariantProductMismatch
		}
	}
	if len(variants) > MaxVariantsPerItem {
		return nil, ErrTooManyVariants
	}

	var minPrice, maxPrice *Money
	if len(variants) > 0 {
		lo, hi := priceRange(variants)
		minPrice, maxPrice = &lo, &hi
	}

	return &AdminProductListItem{
		product:      product,
		category:     category,
		thumbnailURL: thumbnailURL(images),
		minPrice:     minPrice,
		maxPrice:     maxPrice,
		variantCount: len(variants),
	}, nil
}

func (li *AdminProductListItem) Product() *Product {
	return li.product
}

func (li *AdminProductListItem) Category() *Category {
	return li.category
}

func (li *AdminProductListItem) ThumbnailImageURL() *string {
	return li.thumbnailURL
}

func (li *AdminProductListItem) MinPrice() *Money {
	return li.minPrice
}

func (li *AdminProductListItem) MaxPrice() *Money {
	return li.maxPrice
}

func (li *AdminProductListItem) VariantCount() int {
	return li.variantCount
}

// IsPublishable is false only for a published product that has no variant to
// sell; such a product would be visible but not purchasable.
func (li *AdminProductListItem) IsPublishable() bool {
	return !(li.product.IsPublished() && li.variantCount == 0)
}

// AdminProductList is a bounded page of admin list items with derived status
// counts.
type AdminProductList struct {
	items []*AdminProductListItem
}

// NewAdminProductList validates the page size bound.
func NewAdminProductList(items []*AdminProductListItem) (*AdminProductList, error) {
	if len(items) > MaxListItems {
		return nil, ErrTooManyListItems
	}
	return &AdminProductList{items: items}, nil
}

func (l *AdminProductList) Items() []*AdminProductListItem {
	return l.items
}

// DraftCount returns the number of items whose product is a draft.
func (l *AdminProductList) DraftCount() int {
	count := 0
	for _, li := range l.items {
		if li.Product().Status() == ProductStatusDraft {
			count++
		}
	}
	return count
}

// PublishedCount returns the number of items whose product is published.
func (l *AdminProductList) PublishedCount() int {
	count := 0
	for _, li := range l.items {
		if li.Product().Status() == ProductStatusPublished {
			count++
		}
	}
	return count
}
