package m_variant_option

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a variant option row.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical fields for a variant option insertion.
func BuildInsertMap(variantOptionID, variantID, optionName, optionValue string,
	displayOrder int64, createdAt, updatedAt time.Time) map[string]interface{} {

	return map[string]interface{}{
		ColVariantOptionID: variantOptionID,
		ColVariantID:       variantID,
		ColOptionName:      optionName,
		ColOptionValue:     optionValue,
		ColDisplayOrder:    displayOrder,
		ColCreatedAt:       createdAt,
		ColUpdatedAt:       updatedAt,
	}
}
