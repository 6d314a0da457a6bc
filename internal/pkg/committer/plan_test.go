package committer

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
)

func TestPlan(t *testing.T) {
	p := NewPlan()
	assert.True(t, p.IsEmpty())
	assert.Equal(t, 0, p.Len())

	m := spanner.Insert("products", []string{"product_id"}, []interface{}{"prod-1"})
	p.Add(m)
	assert.False(t, p.IsEmpty())
	assert.Equal(t, 1, p.Len())

	p.AddAll([]*spanner.Mutation{
		spanner.Insert("product_options", []string{"option_id"}, []interface{}{"opt-1"}),
		nil,
		spanner.Insert("product_images", []string{"image_id"}, []interface{}{"img-1"}),
	})
	assert.Equal(t, 3, p.Len())
	assert.Len(t, p.Mutations(), 3)
}

func TestPlan_IgnoresNil(t *testing.T) {
	p := NewPlan()
	p.Add(nil)
	assert.True(t, p.IsEmpty())
}
