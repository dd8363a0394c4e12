package simulated

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"marketplace-client/internal/adapters/catalogapi"
	"marketplace-client/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := NewBackend(-1)
	require.NoError(t, err)
	return b
}

func TestBackend_SearchUsesUpperCasedNicknameAsPrefix(t *testing.T) {
	b := newTestBackend(t)

	req := catalogapi.SearchRequest("MLA", "acme", 30)
	body, err := b.Respond(context.Background(), req)
	require.NoError(t, err)

	var resp catalogapi.SearchResponseDTO
	require.NoError(t, json.Unmarshal(body, &resp))

	require.Len(t, resp.Results, 2)
	assert.Equal(t, "ACME_001", resp.Results[0].ID)
	assert.Equal(t, "ACME_002", resp.Results[1].ID)
	require.NotNil(t, resp.Paging)
	require.NotNil(t, resp.Paging.Total)
	assert.Equal(t, 2, *resp.Paging.Total)
	require.NotNil(t, resp.Total)
	assert.Equal(t, 2, *resp.Total)
}

func TestBackend_SearchWithoutNicknameDefaultsToMock(t *testing.T) {
	b := newTestBackend(t)

	for _, query := range []url.Values{nil, {"nickname": {""}}, {"limit": {"5"}}} {
		body, err := b.Respond(context.Background(), catalogapi.Request{Path: "/sites/MLB/search", Query: query})
		require.NoError(t, err)

		var resp catalogapi.SearchResponseDTO
		require.NoError(t, json.Unmarshal(body, &resp))
		require.Len(t, resp.Results, 2)
		assert.Equal(t, "MOCK_001", resp.Results[0].ID)
	}
}

func TestBackend_SearchItemsCoverShippingBranches(t *testing.T) {
	b := newTestBackend(t)

	body, err := b.Respond(context.Background(), catalogapi.SearchRequest("MLA", "shop", 10))
	require.NoError(t, err)

	var resp catalogapi.SearchResponseDTO
	require.NoError(t, json.Unmarshal(body, &resp))

	first := catalogapi.MapSearchItem(resp.Results[0])
	second := catalogapi.MapSearchItem(resp.Results[1])

	assert.Equal(t, domain.ShippingFree, first.ShippingType)
	assert.True(t, first.HasDiscount)
	require.NotNil(t, first.DiscountPercentage)
	assert.Equal(t, 17, *first.DiscountPercentage)

	assert.Equal(t, domain.ShippingStandard, second.ShippingType)
	assert.False(t, second.HasDiscount)
	assert.Nil(t, second.DiscountPercentage)
}

func TestBackend_ItemDetailEchoesPathSuffix(t *testing.T) {
	b := newTestBackend(t)

	body, err := b.Respond(context.Background(), catalogapi.DetailRequest("MLA123"))
	require.NoError(t, err)

	var dto catalogapi.ItemDetailDTO
	require.NoError(t, json.Unmarshal(body, &dto))

	detail := catalogapi.MapItemDetail(dto)
	assert.Equal(t, "MLA123", detail.ID)
	assert.Equal(t, "Mocked MLA123 Title", detail.Title)
	assert.Equal(t, 12345.99, detail.Price)
	assert.Equal(t, placeholderPicture, detail.Image)
	assert.True(t, detail.HasFreeShipping)
}

func TestBackend_UnknownPathIsNotFound(t *testing.T) {
	b := newTestBackend(t)

	for _, path := range []string{"/users/me", "/sites/MLA", "/sites/MLA/categories"} {
		_, err := b.Respond(context.Background(), catalogapi.Request{Path: path})
		require.Error(t, err, path)
		assert.True(t, errors.Is(err, domain.ErrNotFound), path)
	}
}

func TestBackend_DelayHonoursContext(t *testing.T) {
	b, err := NewBackend(time.Hour)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = b.Respond(ctx, catalogapi.DetailRequest("X"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBackend_DelayIsApplied(t *testing.T) {
	b, err := NewBackend(30 * time.Millisecond)
	require.NoError(t, err)

	start := time.Now()
	_, err = b.Respond(context.Background(), catalogapi.DetailRequest("X"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestContracts_RejectBrokenPayload(t *testing.T) {
	c, err := loadContracts()
	require.NoError(t, err)

	assert.NoError(t, c.validate(schemaItemDetail, []byte(`{"id":"A","title":"t","price":1}`)))
	assert.Error(t, c.validate(schemaItemDetail, []byte(`{"id":"A","title":"t"}`)))
	assert.Error(t, c.validate(schemaSearchResponse, []byte(`{"results":[{"id":"","title":"t","price":1}]}`)))
	assert.Error(t, c.validate(schemaSearchResponse, []byte(`{"results":[{"id":"A","title":"t","price":1,"shipping":{"tags":[1]}}]}`)))
	assert.Error(t, c.validate("missing.json", []byte(`{}`)))
}

func TestIsSearchPath(t *testing.T) {
	assert.True(t, isSearchPath("/sites/MLA/search"))
	assert.True(t, isSearchPath("/sites/MLA/search_by_seller"))
	assert.False(t, isSearchPath("/sites/MLA"))
	assert.False(t, isSearchPath("/items/search"))
}
