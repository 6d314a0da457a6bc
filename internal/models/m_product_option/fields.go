package m_product_option

// Field constants for the product_options table.
const (
	TableName = "product_options"

	ColOptionID     = "option_id"
	ColProductID    = "product_id"
	ColOptionName   = "option_name"
	ColDisplayOrder = "display_order"
	ColCreatedAt    = "created_at"
	ColUpdatedAt    = "updated_at"
)
