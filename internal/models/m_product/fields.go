package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID   = "product_id"
	ColName        = "name"
	ColDescription = "description"
	ColCategoryID  = "category_id"
	ColStatus      = "status"
	ColCreatedAt   = "created_at"
	ColUpdatedAt   = "updated_at"
)
