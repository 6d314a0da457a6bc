package m_product_variant

// Field constants for the product_variants table.
const (
	TableName = "product_variants"

	ColVariantID    = "variant_id"
	ColProductID    = "product_id"
	ColSKU          = "sku"
	ColBarcode      = "barcode"
	ColImageURL     = "image_url"
	ColPrice        = "price"
	ColDisplayOrder = "display_order"
	ColCreatedAt    = "created_at"
	ColUpdatedAt    = "updated_at"
)
