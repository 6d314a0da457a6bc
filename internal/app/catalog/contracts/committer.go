package contracts

import (
	"context"

	commitplan "github.com/shoplane/catalog-service/internal/pkg/committer"
)

// Committer applies a collection of mutations atomically. Usecases depend on
// this interface rather than the Spanner client so tests can swap in a fake.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
