package m_product_variant

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a variant row.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical fields for a variant insertion.
// Nullable columns are stored as nil when the pointer is nil.
func BuildInsertMap(variantID, productID, sku string, barcode, imageURL *string,
	price, displayOrder int64, createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColVariantID:    variantID,
		ColProductID:    productID,
		ColSKU:          sku,
		ColPrice:        price,
		ColDisplayOrder: displayOrder,
		ColCreatedAt:    createdAt,
		ColUpdatedAt:    updatedAt,
	}

	if barcode != nil {
		m[ColBarcode] = *barcode
	} else {
		m[ColBarcode] = nil
	}

	if imageURL != nil {
		m[ColImageURL] = *imageURL
	} else {
		m[ColImageURL] = nil
	}

	return m
}
