package screen

import (
	"errors"
	"testing"

	"marketplace-client/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestReduceDetail_Transitions(t *testing.T) {
	s := NewDetailState("MLA123")
	assert.Equal(t, StatusInitial, s.Detail.Status())

	s, effects := ReduceDetail(s, DetailOnAppear{})
	assert.Equal(t, StatusLoading, s.Detail.Status())
	assert.Equal(t, []DetailEffect{FetchDetail{ItemID: "MLA123"}}, effects)

	s, effects = ReduceDetail(s, DetailLoaded{Detail: domain.ProductDetail{ID: "MLA123"}})
	assert.Empty(t, effects)
	detail, ok := s.Detail.Value()
	assert.True(t, ok)
	assert.Equal(t, "MLA123", detail.ID)
}

func TestReduceDetail_FailureShowsError(t *testing.T) {
	s, _ := ReduceDetail(NewDetailState("X"), DetailOnAppear{})

	s, effects := ReduceDetail(s, DetailLoadFailed{Err: errors.New("connection reset")})
	code, msg, ok := s.Detail.Failure()
	assert.True(t, ok)
	assert.Equal(t, "network_error", code)
	assert.Equal(t, "connection reset", msg)
	assert.Equal(t, []DetailEffect{ShowError{Message: "connection reset"}}, effects)

	s, effects = ReduceDetail(s, RetryDetail{})
	assert.Equal(t, StatusLoading, s.Detail.Status())
	assert.Equal(t, []DetailEffect{FetchDetail{ItemID: "X"}}, effects)
}

func TestReduceDetail_GoBack(t *testing.T) {
	s := NewDetailState("X")
	next, effects := ReduceDetail(s, GoBack{})
	assert.Equal(t, s, next)
	assert.Equal(t, []DetailEffect{NavigateBack{}}, effects)
}
