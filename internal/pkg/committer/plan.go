package committer

import "cloud.google.com/go/spanner"

// Plan accumulates the mutations of one logical write. A product create adds
// the product row plus every option, variant, variant option and image row to
// the same plan so they commit together.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{mutations: make([]*spanner.Mutation, 0)}
}

// Add appends a single mutation. Nil mutations are ignored.
func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

// AddAll appends a batch of mutations, skipping nils.
func (p *Plan) AddAll(ms []*spanner.Mutation) {
	for _, m := range ms {
		p.Add(m)
	}
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Len() int {
	return len(p.mutations)
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
