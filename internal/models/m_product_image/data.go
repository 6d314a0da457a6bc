package m_product_image

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for an image row.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical fields for an image insertion.
func BuildInsertMap(imageID, productID string, variantID *string, imageURL string,
	displayOrder int64, createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColImageID:      imageID,
		ColProductID:    productID,
		ColImageURL:     imageURL,
		ColDisplayOrder: displayOrder,
		ColCreatedAt:    createdAt,
		ColUpdatedAt:    updatedAt,
	}

	if variantID != nil {
		m[ColVariantID] = *variantID
	} else {
		m[ColVariantID] = nil
	}

	return m
}
