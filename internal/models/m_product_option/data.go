package m_product_option

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a product option row.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical fields for an option insertion.
func BuildInsertMap(optionID, productID, optionName string, displayOrder int64, createdAt, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColOptionID:     optionID,
		ColProductID:    productID,
		ColOptionName:   optionName,
		ColDisplayOrder: displayOrder,
		ColCreatedAt:    createdAt,
		ColUpdatedAt:    updatedAt,
	}
}
