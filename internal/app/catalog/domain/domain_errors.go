package domain

import "errors"

// ValidationError is the single error kind surfaced by entity and aggregate
// constructors. Every rule has its own sentinel value below so callers can
// both match with errors.Is and show the message as-is.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// IsValidation reports whether err (or anything it wraps) is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Money
var (
	ErrNegativeAmount = newValidationError("amount must be greater than or equal to 0")
	ErrNegativeFactor = newValidationError("scale factor must be greater than or equal to 0")
)

// Category
var (
	ErrEmptyCategoryName    = newValidationError("category name must not be blank")
	ErrCategoryNameTooLong  = newValidationError("category name must be 50 characters or less")
	ErrNegativeDisplayOrder = newValidationError("display order must be greater than or equal to 0")
	ErrCategorySelfParent   = newValidationError("category cannot be its own parent")
)

// Product
var (
	ErrEmptyProductName           = newValidationError("product name must not be blank")
	ErrProductNameTooLong         = newValidationError("product name must be 200 characters or less")
	ErrEmptyProductDescription    = newValidationError("product description must not be blank")
	ErrProductDescriptionTooLong  = newValidationError("product description must be 4096 characters or less")
	ErrEmptyCategoryID            = newValidationError("category id must not be empty")
	ErrInvalidProductStatus       = newValidationError("product status must be draft, published or archived")
	ErrNoProductOptions           = newValidationError("product must have at least 1 option")
	ErrTooManyProductOptions      = newValidationError("product must have 5 options or less")
)

// ProductOption / ProductVariantOption
var (
	ErrEmptyOptionName    = newValidationError("option name must not be blank")
	ErrOptionNameTooLong  = newValidationError("option name must be 50 characters or less")
	ErrEmptyOptionValue   = newValidationError("option value must not be blank")
	ErrOptionValueTooLong = newValidationError("option value must be 50 characters or less")
)

// ProductVariant
var (
	ErrEmptySKU                 = newValidationError("sku must not be blank")
	ErrSKUTooLong               = newValidationError("sku must be 50 characters or less")
	ErrInvalidSKUFormat         = newValidationError("sku may only contain letters, digits, hyphens and underscores")
	ErrBarcodeTooLong           = newValidationError("barcode must be 30 characters or less")
	ErrInvalidBarcodeFormat     = newValidationError("barcode may only contain JAN/CODE39 characters")
	ErrImageURLTooLong          = newValidationError("image url must be 500 characters or less")
	ErrPriceOutOfRange          = newValidationError("price must be less than 1000000")
	ErrVariantDisplayOrderRange = newValidationError("variant display order must be between 0 and 500")
	ErrNoVariantOptions         = newValidationError("variant must have at least 1 option value")
	ErrTooManyVariantOptions    = newValidationError("variant must have 5 option values or less")
)

// ProductImage
var (
	ErrEmptyProductID         = newValidationError("product id must not be empty")
	ErrEmptyImageURL          = newValidationError("image url must not be blank")
	ErrImageDisplayOrderRange = newValidationError("image display order must be greater than or equal to 1")
)

// ProductDetails aggregate
var (
	ErrOptionsWithoutVariants   = newValidationError("product defines options but has no variants")
	ErrVariantsWithoutOptions   = newValidationError("product has variants but defines no options")
	ErrUnknownVariantOption     = newValidationError("variant uses an option name that is not defined on the product")
	ErrDuplicateSKU             = newValidationError("variants must have unique skus")
	ErrDuplicateBarcode         = newValidationError("variants must have unique barcodes")
	ErrPublishedWithoutVariants = newValidationError("published product must have at least 1 variant")
)

// Category tree
var (
	ErrTreeDepthOutOfRange     = newValidationError("category depth must be between 1 and 3")
	ErrTooManyChildCategories  = newValidationError("category must have 30 child categories or less")
	ErrChildDepthMismatch      = newValidationError("child category depth must be parent depth plus 1")
	ErrChildParentMismatch     = newValidationError("child category does not belong to its parent")
	ErrDuplicateDisplayOrder   = newValidationError("sibling categories must have distinct display orders")
	ErrRootDepthNotOne         = newValidationError("root category must have depth 1")
	ErrRootHasParent           = newValidationError("root category must not have a parent")
	ErrTooManyRootCategories   = newValidationError("tree must have 20 root categories or less")
)

// List projections
var (
	ErrVariantProductMismatch = newValidationError("variant does not belong to the product")
	ErrNoVariants             = newValidationError("product must have at least 1 variant")
	ErrTooManyVariants        = newValidationError("product must have 100 variants or less")
	ErrTooManyListItems       = newValidationError("product list must have 100 items or less")
)

// ErrUnknownImageVariant is raised when a create request scopes an image to
// a variant SKU that the request does not define.
var ErrUnknownImageVariant = newValidationError("image references an unknown variant sku")

// Lookup failures raised by the use-case layer, not by constructors.
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryNotFound indicates that a referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
)
