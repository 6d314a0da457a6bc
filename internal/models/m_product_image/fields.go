package m_product_image

// Field constants for the product_images table.
const (
	TableName = "product_images"

	ColImageID      = "image_id"
	ColProductID    = "product_id"
	ColVariantID    = "variant_id"
	ColImageURL     = "image_url"
	ColDisplayOrder = "display_order"
	ColCreatedAt    = "created_at"
	ColUpdatedAt    = "updated_at"
)
