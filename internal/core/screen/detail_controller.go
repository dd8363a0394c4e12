package screen

import (
	"context"
	"sync"

	"marketplace-client/internal/contextkeys"
	"marketplace-client/internal/core/port"
	"marketplace-client/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

// DetailController - единственный владелец DetailState одного товара
type DetailController struct {
	store     *store[DetailState, DetailEvent, DetailEffect]
	getDetail usecases_port.GetProductDetailPort

	handlersMu sync.RWMutex
	onBack     func()
	onError    func(message string)

	inflight sync.WaitGroup
}

func NewDetailController(itemID string, getDetail usecases_port.GetProductDetailPort) *DetailController {
	return &DetailController{
		store:     newStore(NewDetailState(itemID), ReduceDetail),
		getDetail: getDetail,
	}
}

func (c *DetailController) State() DetailState {
	return c.store.snapshot()
}

func (c *DetailController) Subscribe(fn func(DetailState)) {
	c.store.subscribe(fn)
}

// OnNavigateBack и OnShowError - одноразовые сигналы для слоя представления
func (c *DetailController) OnNavigateBack(fn func()) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	c.onBack = fn
}

func (c *DetailController) OnShowError(fn func(message string)) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	c.onError = fn
}

func (c *DetailController) Send(ctx context.Context, event DetailEvent) {
	for _, effect := range c.store.dispatch(event) {
		switch eff := effect.(type) {
		case FetchDetail:
			c.fetch(ctx, eff)
		case ShowError:
			c.handlersMu.RLock()
			onError := c.onError
			c.handlersMu.RUnlock()
			if onError != nil {
				onError(eff.Message)
			}
		case NavigateBack:
			c.handlersMu.RLock()
			onBack := c.onBack
			c.handlersMu.RUnlock()
			if onBack != nil {
				onBack()
			}
		}
	}
}

func (c *DetailController) Wait() {
	c.inflight.Wait()
}

func (c *DetailController) fetch(ctx context.Context, eff FetchDetail) {
	fetchCtx := context.WithoutCancel(ctx)
	requestID := uuid.New().String()
	fetchCtx, _ = contextkeys.EnsureTraceID(fetchCtx, requestID)
	logger := contextkeys.LoggerFromContext(fetchCtx).WithFields(port.Fields{
		"component":  "DetailController",
		"request_id": requestID,
	})
	fetchCtx = contextkeys.ContextWithLogger(fetchCtx, logger)

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		detail, err := c.getDetail.Execute(fetchCtx, eff.ItemID)
		if err != nil {
			logger.Warn("Detail load failed, showing system error", port.Fields{"error": err.Error()})
			c.Send(fetchCtx, DetailLoadFailed{Err: err})
			return
		}
		c.Send(fetchCtx, DetailLoaded{Detail: detail})
	}()
}
