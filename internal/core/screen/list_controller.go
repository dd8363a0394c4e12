package screen

import (
	"context"
	"sync"

	"marketplace-client/internal/contextkeys"
	"marketplace-client/internal/core/port"
	"marketplace-client/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

// ListController - единственный владелец ListState.
// Каждое событие загрузки порождает новый запрос: запросы не склеиваются
// и не отменяются, поздний ответ перезаписывает состояние.
type ListController struct {
	store  *store[ListState, ListEvent, ListEffect]
	search usecases_port.SearchProductsPort

	navMu    sync.RWMutex
	navigate func(productID string)

	inflight sync.WaitGroup
}

// NewListController создает контроллер в состоянии Initial
func NewListController(search usecases_port.SearchProductsPort, limit int) *ListController {
	reduce := func(s ListState, e ListEvent) (ListState, []ListEffect) {
		return ReduceList(s, e, limit)
	}
	return &ListController{
		store:  newStore(NewListState(), reduce),
		search: search,
	}
}

func (c *ListController) State() ListState {
	return c.store.snapshot()
}

// Subscribe регистрирует получателя новых снимков состояния
func (c *ListController) Subscribe(fn func(ListState)) {
	c.store.subscribe(fn)
}

// OnNavigate регистрирует обработчик перехода на карточку товара
func (c *ListController) OnNavigate(fn func(productID string)) {
	c.navMu.Lock()
	defer c.navMu.Unlock()
	c.navigate = fn
}

// Send применяет событие и запускает эффекты
func (c *ListController) Send(ctx context.Context, event ListEvent) {
	for _, effect := range c.store.dispatch(event) {
		switch eff := effect.(type) {
		case FetchProducts:
			c.fetch(ctx, eff)
		case NavigateToDetail:
			c.navMu.RLock()
			navigate := c.navigate
			c.navMu.RUnlock()
			if navigate != nil {
				navigate(eff.ProductID)
			}
		}
	}
}

// Wait ждет завершения всех запущенных загрузок
func (c *ListController) Wait() {
	c.inflight.Wait()
}

func (c *ListController) fetch(ctx context.Context, eff FetchProducts) {
	// загрузка живет дольше события, которое ее запустило
	fetchCtx := context.WithoutCancel(ctx)
	requestID := uuid.New().String()
	fetchCtx, _ = contextkeys.EnsureTraceID(fetchCtx, requestID)
	logger := contextkeys.LoggerFromContext(fetchCtx).WithFields(port.Fields{
		"component":  "ListController",
		"request_id": requestID,
	})
	fetchCtx = contextkeys.ContextWithLogger(fetchCtx, logger)

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		result, err := c.search.Execute(fetchCtx, eff.Query, eff.Limit)
		if err != nil {
			logger.Warn("Search failed, showing system error", port.Fields{"error": err.Error()})
			c.Send(fetchCtx, ProductsLoadFailed{Err: err})
			return
		}
		c.Send(fetchCtx, ProductsLoaded{Result: result})
	}()
}
