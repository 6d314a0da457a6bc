package repo

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
	"github.com/shoplane/catalog-service/internal/models/m_category"
)

// CategoryRepo is the Spanner implementation of the category read repository.
type CategoryRepo struct {
	client *spanner.Client
}

func NewCategoryRepo(client *spanner.Client) *CategoryRepo {
	return &CategoryRepo{client: client}
}

// FindByIDs reads the requested categories in one keyed batch read.
// IDs that do not resolve are absent from the result.
func (r *CategoryRepo) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Category, error) {
	out := make(map[string]*domain.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]spanner.Key, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, spanner.Key{id})
	}

	iter := r.client.Single().Read(ctx, m_category.TableName, spanner.KeySetFromKeys(keys...), m_category.ReadColumns)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		c, err := scanCategory(row)
		if err != nil {
			return nil, err
		}
		out[c.ID()] = c
	}
}

// FindAll returns every category, ordered by display order for stable output.
func (r *CategoryRepo) FindAll(ctx context.Context) ([]*domain.Category, error) {
	stmt := spanner.Statement{
		SQL: `SELECT category_id, name, parent_id, display_order, created_at, updated_at
			FROM categories
			ORDER BY display_order ASC`,
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*domain.Category
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		c, err := scanCategory(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
}

// scanCategory rebuilds a validated Category from one row. Rows that violate
// the entity rules fail the read; corrupt data never leaks past this point.
func scanCategory(row *spanner.Row) (*domain.Category, error) {
	var (
		id           string
		name         string
		parentID     spanner.NullString
		displayOrder int64
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Columns(&id, &name, &parentID, &displayOrder, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var parent *string
	if parentID.Valid {
		p := parentID.StringVal
		parent = &p
	}

	return domain.NewCategory(id, name, parent, int(displayOrder), createdAt, updatedAt)
}
