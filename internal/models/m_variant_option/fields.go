package m_variant_option

// Field constants for the product_variant_options table.
const (
	TableName = "product_variant_options"

	ColVariantOptionID = "variant_option_id"
	ColVariantID       = "variant_id"
	ColOptionName      = "option_name"
	ColOptionValue     = "option_value"
	ColDisplayOrder    = "display_order"
	ColCreatedAt       = "created_at"
	ColUpdatedAt       = "updated_at"
)
