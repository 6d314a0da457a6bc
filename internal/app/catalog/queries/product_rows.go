package queries

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
)

// productRow carries the scanned columns of one products row before the
// aggregate is assembled.
type productRow struct {
	id          string
	name        string
	description string
	categoryID  string
	status      string
	createdAt   time.Time
	updatedAt   time.Time
}

func (rm *SpannerReadModel) queryProductRows(ctx context.Context, stmt spanner.Statement) ([]*productRow, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var rows []*productRow
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}

		pr := &productRow{}
		if err := row.Columns(&pr.id, &pr.name, &pr.description, &pr.categoryID, &pr.status,
			&pr.createdAt, &pr.updatedAt); err != nil {
			return nil, err
		}
		rows = append(rows, pr)
	}
}

// assembleAggregates loads the child rows for a page of products in one query
// per child table and rebuilds validated aggregates. Rows always pass back
// through the domain constructors; a row that violates the entity rules fails
// the whole read.
func (rm *SpannerReadModel) assembleAggregates(ctx context.Context, rows []*productRow) ([]*domain.ProductAggregate, error) {
	if len(rows) == 0 {
		return []*domain.ProductAggregate{}, nil
	}

	productIDs := make([]string, 0, len(rows))
	for _, pr := range rows {
		productIDs = append(productIDs, pr.id)
	}

	optionsByProduct, err := rm.fetchOptions(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	variantsByProduct, err := rm.fetchVariants(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	imagesByProduct, err := rm.fetchImages(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	aggs := make([]*domain.ProductAggregate, 0, len(rows))
	for _, pr := range rows {
		status, err := domain.ParseProductStatus(pr.status)
		if err != nil {
			return nil, err
		}
		product, err := domain.NewProduct(pr.id, pr.name, pr.description, pr.categoryID, status,
			optionsByProduct[pr.id], pr.createdAt, pr.updatedAt)
		if err != nil {
			return nil, err
		}
		aggs = append(aggs, &domain.ProductAggregate{
			Product:  product,
			Variants: variantsByProduct[pr.id],
			Images:   imagesByProduct[pr.id],
		})
	}
	return aggs, nil
}

func (rm *SpannerReadModel) fetchOptions(ctx context.Context, productIDs []string) (map[string][]*domain.ProductOption, error) {
	stmt := spanner.Statement{
		SQL: `SELECT option_id, product_id, option_name, display_order, created_at, updated_at
			FROM product_options
			WHERE product_id IN UNNEST(@productIDs)
			ORDER BY display_order ASC`,
		Params: map[string]interface{}{"productIDs": productIDs},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make(map[string][]*domain.ProductOption)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			id, productID, optionName string
			displayOrder              int64
			createdAt, updatedAt      time.Time
		)
		if err := row.Columns(&id, &productID, &optionName, &displayOrder, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		option, err := domain.NewProductOption(id, productID, optionName, int(displayOrder), createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		out[productID] = append(out[productID], option)
	}
}

// variantRow carries one scanned product_variants row until its option values
// have been fetched.
type variantRow struct {
	id           string
	productID    string
	sku          string
	barcode      *string
	imageURL     *string
	price        int64
	displayOrder int64
	createdAt    time.Time
	updatedAt    time.Time
}

func (rm *SpannerReadModel) fetchVariants(ctx context.Context, productIDs []string) (map[string][]*domain.ProductVariant, error) {
	stmt := spanner.Statement{
		SQL: `SELECT variant_id, product_id, sku, barcode, image_url, price, display_order, created_at, updated_at
			FROM product_variants
			WHERE product_id IN UNNEST(@productIDs)
			ORDER BY display_order ASC`,
		Params: map[string]interface{}{"productIDs": productIDs},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var rows []*variantRow
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var (
			id, productID, sku string
			barcode, imageURL  spanner.NullString
			price              int64
			displayOrder       int64
			createdAt          time.Time
			updatedAt          time.Time
		)
		if err := row.Columns(&id, &productID, &sku, &barcode, &imageURL, &price, &displayOrder,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		vr := &variantRow{
			id:           id,
			productID:    productID,
			sku:          sku,
			price:        price,
			displayOrder: displayOrder,
			createdAt:    createdAt,
			updatedAt:    updatedAt,
		}
		if barcode.Valid {
			b := barcode.StringVal
			vr.barcode = &b
		}
		if imageURL.Valid {
			u := imageURL.StringVal
			vr.imageURL = &u
		}
		rows = append(rows, vr)
	}

	variantIDs := make([]string, 0, len(rows))
	for _, vr := range rows {
		variantIDs = append(variantIDs, vr.id)
	}
	optionsByVariant, err := rm.fetchVariantOptions(ctx, variantIDs)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]*domain.ProductVariant)
	for _, vr := range rows {
		price, err := domain.NewMoney(vr.price)
		if err != nil {
			return nil, err
		}
		variant, err := domain.NewProductVariant(vr.id, vr.productID, vr.sku, vr.barcode, vr.imageURL,
			price, int(vr.displayOrder), optionsByVariant[vr.id], vr.createdAt, vr.updatedAt)
		if err != nil {
			return nil, err
		}
		out[vr.productID] = append(out[vr.productID], variant)
	}
	return out, nil
}

func (rm *SpannerReadModel) fetchVariantOptions(ctx context.Context, variantIDs []string) (map[string][]*domain.ProductVariantOption, error) {
	out := make(map[string][]*domain.ProductVariantOption)
	if len(variantIDs) == 0 {
		return out, nil
	}

	stmt := spanner.Statement{
		SQL: `SELECT variant_option_id, variant_id, option_name, option_value, display_order, created_at, updated_at
			FROM product_variant_options
			WHERE variant_id IN UNNEST(@variantIDs)
			ORDER BY display_order ASC`,
		Params: map[string]interface{}{"variantIDs": variantIDs},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			id, variantID, optionName, optionValue string
			displayOrder                           int64
			createdAt, updatedAt                   time.Time
		)
		if err := row.Columns(&id, &variantID, &optionName, &optionValue, &displayOrder,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		vo, err := domain.NewProductVariantOption(id, variantID, optionName, optionValue,
			int(displayOrder), createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		out[variantID] = append(out[variantID], vo)
	}
}

func (rm *SpannerReadModel) fetchImages(ctx context.Context, productIDs []string) (map[string][]*domain.ProductImage, error) {
	stmt := spanner.Statement{
		SQL: `SELECT image_id, product_id, variant_id, image_url, display_order, created_at, updated_at
			FROM product_images
			WHERE product_id IN UNNEST(@productIDs)
			ORDER BY display_order ASC`,
		Params: map[string]interface{}{"productIDs": productIDs},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make(map[string][]*domain.ProductImage)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			id, productID        string
			variantID            spanner.NullString
			imageURL             string
			displayOrder         int64
			createdAt, updatedAt time.Time
		)
		if err := row.Columns(&id, &productID, &variantID, &imageURL, &displayOrder,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		var vid *string
		if variantID.Valid {
			v := variantID.StringVal
			vid = &v
		}

		img, err := domain.NewProductImage(id, productID, vid, imageURL, int(displayOrder), createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		out[productID] = append(out[productID], img)
	}
}
