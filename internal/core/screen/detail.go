package screen

import (
	"marketplace-client/internal/constants"
	"marketplace-client/internal/core/domain"
)

// DetailState - состояние экрана карточки товара
type DetailState struct {
	ItemID string                        `json:"item_id"`
	Detail UiState[domain.ProductDetail] `json:"detail"`
}

func NewDetailState(itemID string) DetailState {
	return DetailState{ItemID: itemID, Detail: Initial[domain.ProductDetail]()}
}

type DetailEvent interface {
	isDetailEvent()
}

type (
	DetailOnAppear   struct{}
	RetryDetail      struct{}
	GoBack           struct{}
	DetailLoaded     struct{ Detail domain.ProductDetail }
	DetailLoadFailed struct{ Err error }
)

func (DetailOnAppear) isDetailEvent()   {}
func (RetryDetail) isDetailEvent()      {}
func (GoBack) isDetailEvent()           {}
func (DetailLoaded) isDetailEvent()     {}
func (DetailLoadFailed) isDetailEvent() {}

type DetailEffect interface {
	isDetailEffect()
}

type (
	FetchDetail  struct{ ItemID string }
	ShowError    struct{ Message string }
	NavigateBack struct{}
)

func (FetchDetail) isDetailEffect()  {}
func (ShowError) isDetailEffect()    {}
func (NavigateBack) isDetailEffect() {}

// ReduceDetail - чистая функция переходов экрана карточки
func ReduceDetail(state DetailState, event DetailEvent) (DetailState, []DetailEffect) {
	switch ev := event.(type) {
	case DetailOnAppear, RetryDetail:
		state.Detail = Loading[domain.ProductDetail]()
		return state, []DetailEffect{FetchDetail{ItemID: state.ItemID}}

	case DetailLoaded:
		state.Detail = Success(ev.Detail)
		return state, nil

	case DetailLoadFailed:
		msg := errorMessage(ev.Err)
		state.Detail = SystemError[domain.ProductDetail](constants.NetworkErrorCode, msg)
		return state, []DetailEffect{ShowError{Message: msg}}

	case GoBack:
		return state, []DetailEffect{NavigateBack{}}
	}

	return state, nil
}
