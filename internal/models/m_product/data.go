package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a product row using a
// map of values keyed by the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical fields for a product insertion.
func BuildInsertMap(productID, name, description, categoryID, status string, createdAt, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColProductID:   productID,
		ColName:        name,
		ColDescription: description,
		ColCategoryID:  categoryID,
		ColStatus:      status,
		ColCreatedAt:   createdAt,
		ColUpdatedAt:   updatedAt,
	}
}
