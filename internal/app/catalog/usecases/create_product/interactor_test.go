package create_product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
	"github.com/shoplane/catalog-service/internal/app/catalog/repo"
	"github.com/shoplane/catalog-service/internal/pkg/clock"
	commitplan "github.com/shoplane/catalog-service/internal/pkg/committer"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeCategoryRepo struct {
	categories map[string]*domain.Category
	err        error
}

func (f *fakeCategoryRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	found := make(map[string]*domain.Category)
	for _, id := range ids {
		if c, ok := f.categories[id]; ok {
			found[id] = c
		}
	}
	return found, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*domain.Category, error) {
	return nil, f.err
}

type fakeCommitter struct {
	applied *commitplan.Plan
	err     error
}

func (f *fakeCommitter) Apply(_ context.Context, plan *commitplan.Plan) error {
	if f.err != nil {
		return f.err
	}
	f.applied = plan
	return nil
}

func newTestInteractor(t *testing.T) (*Interactor, *fakeCommitter) {
	t.Helper()
	category, err := domain.NewCategory("cat-1", "Apparel", nil, 0, testTime, testTime)
	require.NoError(t, err)

	committer := &fakeCommitter{}
	it := NewInteractor(
		&fakeCategoryRepo{categories: map[string]*domain.Category{"cat-1": category}},
		repo.NewProductRepo(),
		committer,
		clock.NewFake(testTime),
	)
	return it, committer
}

func validRequest() Request {
	barcode := "4901234567894"
	sku := "TEE-M"
	return Request{
		Name:        "Basic Tee",
		Description: "A plain cotton t-shirt.",
		CategoryID:  "cat-1",
		Status:      "draft",
		Options: []OptionInput{
			{OptionName: "Size", DisplayOrder: 0},
		},
		Variants: []VariantInput{
			{
				SKU:          "TEE-S",
				Price:        1800,
				DisplayOrder: 0,
				Options:      []VariantOptionInput{{OptionName: "Size", OptionValue: "S", DisplayOrder: 0}},
			},
			{
				SKU:          "TEE-M",
				Barcode:      &barcode,
				Price:        2000,
				DisplayOrder: 1,
				Options:      []VariantOptionInput{{OptionName: "Size", OptionValue: "M", DisplayOrder: 0}},
			},
		},
		Images: []ImageInput{
			{ImageURL: "https://cdn.example.com/tee.jpg", DisplayOrder: 1},
			{ImageURL: "https://cdn.example.com/tee-m.jpg", DisplayOrder: 2, VariantSKU: &sku},
		},
	}
}

func TestExecute(t *testing.T) {
	it, committer := newTestInteractor(t)

	got, err := it.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, got.ProductID)
	assert.Equal(t, "Basic Tee", got.Name)
	assert.Equal(t, "cat-1", got.CategoryID)
	assert.Equal(t, "draft", got.Status)
	assert.Equal(t, "2025-06-01T12:00:00Z", got.CreatedAt)
	require.Len(t, got.Options, 1)
	require.Len(t, got.Variants, 2)
	require.Len(t, got.Images, 2)

	// One mutation per row: product, option, 2 variants, 2 variant
	// options, 2 images.
	require.NotNil(t, committer.applied)
	assert.Equal(t, 8, committer.applied.Len())
}

// An image scoped by SKU ends up bound to the minted variant ID.
func TestExecute_ImageVariantBinding(t *testing.T) {
	it, _ := newTestInteractor(t)

	got, err := it.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	var mediumID string
	for _, v := range got.Variants {
		if v.SKU == "TEE-M" {
			mediumID = v.ID
		}
	}
	require.NotEmpty(t, mediumID)

	require.Len(t, got.Images, 2)
	assert.Nil(t, got.Images[0].ProductVariantID)
	require.NotNil(t, got.Images[1].ProductVariantID)
	assert.Equal(t, mediumID, *got.Images[1].ProductVariantID)
}

func TestExecute_InvalidStatus(t *testing.T) {
	it, committer := newTestInteractor(t)

	req := validRequest()
	req.Status = "live"

	_, err := it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidProductStatus)
	assert.Nil(t, committer.applied)
}

func TestExecute_CategoryNotFound(t *testing.T) {
	it, committer := newTestInteractor(t)

	req := validRequest()
	req.CategoryID = "cat-missing"

	_, err := it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Nil(t, committer.applied)
}

func TestExecute_DuplicateSKU(t *testing.T) {
	it, committer := newTestInteractor(t)

	req := validRequest()
	req.Variants[1].SKU = req.Variants[0].SKU
	req.Images = nil

	_, err := it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
	assert.Nil(t, committer.applied)
}

func TestExecute_UnknownImageVariantSKU(t *testing.T) {
	it, committer := newTestInteractor(t)

	unknown := "TEE-XXL"
	req := validRequest()
	req.Images = []ImageInput{
		{ImageURL: "https://cdn.example.com/tee.jpg", DisplayOrder: 1, VariantSKU: &unknown},
	}

	_, err := it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUnknownImageVariant)
	assert.Nil(t, committer.applied)
}

// Published products need at least one variant even at create time.
func TestExecute_PublishedWithoutVariants(t *testing.T) {
	it, committer := newTestInteractor(t)

	req := validRequest()
	req.Status = "published"
	req.Variants = nil
	req.Images = nil

	_, err := it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrPublishedWithoutVariants)
	assert.Nil(t, committer.applied)
}

func TestExecute_CommitFailure(t *testing.T) {
	category, err := domain.NewCategory("cat-1", "Apparel", nil, 0, testTime, testTime)
	require.NoError(t, err)

	commitErr := errors.New("spanner unavailable")
	it := NewInteractor(
		&fakeCategoryRepo{categories: map[string]*domain.Category{"cat-1": category}},
		repo.NewProductRepo(),
		&fakeCommitter{err: commitErr},
		clock.NewFake(testTime),
	)

	_, err = it.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, commitErr)
}
