package screen

import (
	"strings"

	"marketplace-client/internal/constants"
	"marketplace-client/internal/core/domain"
)

// ListState - состояние экрана поиска товаров продавца
type ListState struct {
	SearchQuery  string                    `json:"search_query"`
	Products     UiState[[]domain.Product] `json:"products"`
	TotalResults int                       `json:"total_results"`
}

func NewListState() ListState {
	return ListState{Products: Initial[[]domain.Product]()}
}

// ListEvent - намерение пользователя или результат загрузки
type ListEvent interface {
	isListEvent()
}

type (
	ListOnAppear       struct{}
	SearchQueryChanged struct{ Query string }
	LoadProducts       struct{}
	RetryLoad          struct{}
	SelectProduct      struct{ ProductID string }
	ProductsLoaded     struct{ Result domain.SearchResult }
	ProductsLoadFailed struct{ Err error }
)

func (ListOnAppear) isListEvent()       {}
func (SearchQueryChanged) isListEvent() {}
func (LoadProducts) isListEvent()       {}
func (RetryLoad) isListEvent()          {}
func (SelectProduct) isListEvent()      {}
func (ProductsLoaded) isListEvent()     {}
func (ProductsLoadFailed) isListEvent() {}

// ListEffect - то, что редьюсер просит выполнить снаружи
type ListEffect interface {
	isListEffect()
}

type (
	FetchProducts struct {
		Query string
		Limit int
	}
	NavigateToDetail struct{ ProductID string }
)

func (FetchProducts) isListEffect()    {}
func (NavigateToDetail) isListEffect() {}

// ReduceList - чистая функция переходов экрана списка
func ReduceList(state ListState, event ListEvent, limit int) (ListState, []ListEffect) {
	if limit <= 0 {
		limit = constants.DefaultSearchLimit
	}

	switch ev := event.(type) {
	case SearchQueryChanged:
		state.SearchQuery = ev.Query
		if isBlank(ev.Query) {
			state = resetToInitial(state)
		}
		return state, nil

	case ListOnAppear, LoadProducts, RetryLoad:
		// пустой запрос не уходит в сеть
		if isBlank(state.SearchQuery) {
			return resetToInitial(state), nil
		}
		state.Products = Loading[[]domain.Product]()
		return state, []ListEffect{FetchProducts{Query: state.SearchQuery, Limit: limit}}

	case ProductsLoaded:
		if len(ev.Result.Products) == 0 {
			state.Products = Empty[[]domain.Product]()
			state.TotalResults = 0
			return state, nil
		}
		state.Products = Success(ev.Result.Products)
		state.TotalResults = ev.Result.Total
		return state, nil

	case ProductsLoadFailed:
		state.Products = SystemError[[]domain.Product](constants.NetworkErrorCode, errorMessage(ev.Err))
		return state, nil

	case SelectProduct:
		return state, []ListEffect{NavigateToDetail{ProductID: ev.ProductID}}
	}

	return state, nil
}

func resetToInitial(state ListState) ListState {
	state.Products = Initial[[]domain.Product]()
	state.TotalResults = 0
	return state
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
