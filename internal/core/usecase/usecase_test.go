package usecase

import (
	"context"
	"errors"
	"testing"

	"marketplace-client/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	search    domain.SearchResult
	detail    domain.ProductDetail
	err       error
	lastQuery string
	lastLimit int
	lastItem  string
}

func (f *fakeCatalog) SearchProducts(_ context.Context, nickname string, limit int) (domain.SearchResult, error) {
	f.lastQuery, f.lastLimit = nickname, limit
	return f.search, f.err
}

func (f *fakeCatalog) GetProductDetail(_ context.Context, itemID string) (domain.ProductDetail, error) {
	f.lastItem = itemID
	return f.detail, f.err
}

func TestSearchProducts_PassesQueryAndLimit(t *testing.T) {
	catalog := &fakeCatalog{search: domain.SearchResult{Products: []domain.Product{{ID: "A"}}, Total: 40}}

	got, err := NewSearchProductsUseCase(catalog).Execute(context.Background(), "acme", 30)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Total)
	assert.Equal(t, "acme", catalog.lastQuery)
	assert.Equal(t, 30, catalog.lastLimit)
}

func TestSearchProducts_CatalogErrorPropagatesUnchanged(t *testing.T) {
	want := domain.NewInvalidResponseError(500, nil)
	catalog := &fakeCatalog{err: want}

	_, err := NewSearchProductsUseCase(catalog).Execute(context.Background(), "acme", 30)
	assert.Same(t, want, err)
}

func TestSearchProducts_UnexpectedErrorBecomesDecoding(t *testing.T) {
	catalog := &fakeCatalog{err: context.Canceled}

	_, err := NewSearchProductsUseCase(catalog).Execute(context.Background(), "acme", 30)
	assert.True(t, errors.Is(err, domain.ErrDecoding))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGetProductDetail(t *testing.T) {
	catalog := &fakeCatalog{detail: domain.ProductDetail{ID: "MLA123", HasFreeShipping: true}}

	got, err := NewGetProductDetailUseCase(catalog).Execute(context.Background(), "MLA123")
	require.NoError(t, err)
	assert.Equal(t, "MLA123", got.ID)
	assert.Equal(t, "MLA123", catalog.lastItem)
}

func TestGetProductDetail_ErrorPolicy(t *testing.T) {
	notFound := domain.NewNotFoundError(errors.New("mock route not found"))
	_, err := NewGetProductDetailUseCase(&fakeCatalog{err: notFound}).Execute(context.Background(), "X")
	assert.Same(t, notFound, err)

	_, err = NewGetProductDetailUseCase(&fakeCatalog{err: errors.New("boom")}).Execute(context.Background(), "X")
	assert.True(t, errors.Is(err, domain.ErrDecoding))
}
