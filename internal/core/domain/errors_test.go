package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_IsMatchesSentinelByKind(t *testing.T) {
	err := NewInvalidResponseError(500, nil)

	assert.True(t, errors.Is(err, ErrInvalidResponse))
	assert.False(t, errors.Is(err, ErrDecoding))
	assert.Equal(t, "invalid response: status 500", err.Error())
}

func TestAPIError_UnwrapsCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := fmt.Errorf("fetch: %w", NewDecodingError(cause))

	assert.True(t, errors.Is(err, ErrDecoding))
	assert.True(t, errors.Is(err, cause))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindDecoding, apiErr.Kind)
}

func TestAsAPIError(t *testing.T) {
	assert.Nil(t, AsAPIError(nil))

	notFound := NewNotFoundError(errors.New("no route"))
	assert.Same(t, notFound, AsAPIError(fmt.Errorf("wrapped: %w", notFound)))

	wrapped := AsAPIError(errors.New("boom"))
	require.NotNil(t, wrapped)
	assert.Equal(t, KindDecoding, wrapped.Kind)
	assert.Equal(t, "decoding failed: boom", wrapped.Error())
}

func TestShippingType_Label(t *testing.T) {
	assert.Equal(t, "Envío gratis", ShippingFree.Label())
	assert.Equal(t, "FULL", ShippingFull.Label())
	assert.Equal(t, "Envío a todo el país", ShippingStandard.Label())
}

func TestProduct_FormattedPrices(t *testing.T) {
	orig := 1200.0
	p := Product{Price: 1000, OriginalPrice: &orig}

	assert.Equal(t, "$1000.00", p.FormattedPrice())
	assert.Equal(t, "$1200.00", p.FormattedOriginalPrice())
	assert.Empty(t, Product{Price: 1}.FormattedOriginalPrice())
	assert.Equal(t, "$12345.99", ProductDetail{Price: 12345.99}.FormattedPrice())
}
