package domain

// Catalog-wide bounds. Kept in one place so the rules and their tests agree on
// a single source of truth.
const (
	MaxCategoryNameLength       = 50
	MaxProductNameLength        = 200
	MaxProductDescriptionLength = 4096
	MaxOptionNameLength         = 50
	MaxOptionValueLength        = 50
	MaxSKULength                = 50
	MaxBarcodeLength            = 30
	MaxImageURLLength           = 500

	MinProductOptions = 1
	MaxProductOptions = 5
	MinVariantOptions = 1
	MaxVariantOptions = 5

	// MaxVariantPrice is exclusive: a variant price must be strictly below it.
	MaxVariantPrice        = 1_000_000
	MaxVariantDisplayOrder = 500
	MinImageDisplayOrder   = 1

	MaxVariantsPerItem = 100
	MaxListItems       = 100

	MaxTreeDepth       = 3
	MaxChildCategories = 30
	MaxRootCategories  = 20
)
