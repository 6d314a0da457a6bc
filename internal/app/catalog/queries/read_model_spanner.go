package queries

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/shoplane/catalog-service/internal/app/catalog/contracts"
	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
)

// SpannerReadModel is the infrastructure adapter that satisfies
// contracts.ProductReadModel. Listing runs one filtered page query plus one
// count query, then a single batched query per child table for the page's
// product IDs.
type SpannerReadModel struct {
	client *spanner.Client
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{client: client}
}

func (rm *SpannerReadModel) FindMany(ctx context.Context, q contracts.ProductQuery) ([]*domain.ProductAggregate, int64, error) {
	where, params := buildProductFilter(q)

	pageSQL := `SELECT product_id, name, description, category_id, status, created_at, updated_at
		FROM products` + where + orderClause(q) + " LIMIT @limit OFFSET @offset"
	pageParams := cloneParams(params)
	pageParams["limit"] = int64(q.PerPage)
	pageParams["offset"] = int64(q.Offset())

	rows, err := rm.queryProductRows(ctx, spanner.Statement{SQL: pageSQL, Params: pageParams})
	if err != nil {
		return nil, 0, err
	}

	total, err := rm.countProducts(ctx, where, params)
	if err != nil {
		return nil, 0, err
	}

	aggs, err := rm.assembleAggregates(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return aggs, total, nil
}

func (rm *SpannerReadModel) FindByID(ctx context.Context, productID string) (*domain.ProductAggregate, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, name, description, category_id, status, created_at, updated_at
			FROM products
			WHERE product_id = @productID`,
		Params: map[string]interface{}{"productID": productID},
	}

	rows, err := rm.queryProductRows(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrProductNotFound
	}

	aggs, err := rm.assembleAggregates(ctx, rows)
	if err != nil {
		return nil, err
	}
	return aggs[0], nil
}

// buildProductFilter translates the query filters into a WHERE clause and its
// parameters. Price filters match products having at least one variant inside
// the bound.
func buildProductFilter(q contracts.ProductQuery) (string, map[string]interface{}) {
	where := " WHERE 1=1"
	params := map[string]interface{}{}

	if q.CategoryID != nil {
		where += " AND category_id = @categoryID"
		params["categoryID"] = *q.CategoryID
	}
	if q.Keyword != nil {
		where += " AND STRPOS(LOWER(name), LOWER(@keyword)) > 0"
		params["keyword"] = *q.Keyword
	}
	if len(q.Statuses) > 0 {
		statuses := make([]string, 0, len(q.Statuses))
		for _, s := range q.Statuses {
			statuses = append(statuses, string(s))
		}
		where += " AND status IN UNNEST(@statuses)"
		params["statuses"] = statuses
	}
	if q.MinPrice != nil {
		where += ` AND EXISTS (
			SELECT 1 FROM product_variants v
			WHERE v.product_id = products.product_id AND v.price >= @minPrice)`
		params["minPrice"] = *q.MinPrice
	}
	if q.MaxPrice != nil {
		where += ` AND EXISTS (
			SELECT 1 FROM product_variants v
			WHERE v.product_id = products.product_id AND v.price <= @maxPrice)`
		params["maxPrice"] = *q.MaxPrice
	}

	return where, params
}

func orderClause(q contracts.ProductQuery) string {
	col := "name"
	if q.SortBy == contracts.SortByCreatedAt {
		col = "created_at"
	}
	dir := "ASC"
	if q.Order == contracts.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

func cloneParams(params map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(params)+2)
	for k, v := range params {
		out[k] = v
	}
	return out
}

func (rm *SpannerReadModel) countProducts(ctx context.Context, where string, params map[string]interface{}) (int64, error) {
	stmt := spanner.Statement{
		SQL:    "SELECT COUNT(*) FROM products" + where,
		Params: cloneParams(params),
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var total int64
	if err := row.Columns(&total); err != nil {
		return 0, err
	}
	return total, nil
}
