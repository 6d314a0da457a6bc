package m_category

// Field constants for the categories table.
const (
	TableName = "categories"

	ColCategoryID   = "category_id"
	ColName         = "name"
	ColParentID     = "parent_id"
	ColDisplayOrder = "display_order"
	ColCreatedAt    = "created_at"
	ColUpdatedAt    = "updated_at"
)

// ReadColumns is the canonical column order used by read queries.
var ReadColumns = []string{
	ColCategoryID,
	ColName,
	ColParentID,
	ColDisplayOrder,
	ColCreatedAt,
	ColUpdatedAt,
}
