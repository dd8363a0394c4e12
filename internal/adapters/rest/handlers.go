package rest

import (
	"net/http"
	"strconv"

	"marketplace-client/internal/contextkeys"
	"marketplace-client/internal/core/port"
	"marketplace-client/internal/core/port/usecases_port"
	"marketplace-client/internal/core/screen"

	"github.com/go-chi/chi/v5"
)

// ScreenHandlers отдают снимки экранов так, как их увидел бы UI:
// на каждый запрос создается свой контроллер, события отправляются в том же порядке
type ScreenHandlers struct {
	searchUC     usecases_port.SearchProductsPort
	getDetailUC  usecases_port.GetProductDetailPort
	defaultLimit int
}

func NewScreenHandlers(searchUC usecases_port.SearchProductsPort, getDetailUC usecases_port.GetProductDetailPort, defaultLimit int) *ScreenHandlers {
	return &ScreenHandlers{
		searchUC:     searchUC,
		getDetailUC:  getDetailUC,
		defaultLimit: defaultLimit,
	}
}

// productsResponse - снимок экрана списка и маршруты карточек
type productsResponse struct {
	screen.ListState
	Routes map[string]string `json:"routes,omitempty"`
}

// HandleSearchProducts - GET /api/v1/products?nickname=...&limit=...
func (h *ScreenHandlers) HandleSearchProducts(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleSearchProducts"})

	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			WriteJSONError(w, http.StatusBadRequest, "Query parameter 'limit' must be a positive number")
			return
		}
		limit = parsed
	}
	nickname := r.URL.Query().Get("nickname")

	controller := screen.NewListController(h.searchUC, limit)
	controller.Send(r.Context(), screen.SearchQueryChanged{Query: nickname})
	controller.Send(r.Context(), screen.LoadProducts{})
	controller.Wait()

	state := controller.State()
	logger.Info("List screen rendered", port.Fields{
		"nickname": nickname,
		"status":   state.Products.Status().String(),
		"total":    state.TotalResults,
	})

	resp := productsResponse{ListState: state}
	if products, ok := state.Products.Value(); ok {
		resp.Routes = make(map[string]string, len(products))
		for _, p := range products {
			resp.Routes[p.ID] = screen.DetailRoute(p.ID)
		}
	}
	RespondWithJSON(w, statusFor(state.Products.Status()), resp)
}

// HandleGetProductDetail - GET /api/v1/items/{itemID}
func (h *ScreenHandlers) HandleGetProductDetail(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "HandleGetProductDetail",
		"item_id": itemID,
	})

	controller := screen.NewDetailController(itemID, h.getDetailUC)
	controller.OnShowError(func(message string) {
		logger.Warn("Detail screen shows error", port.Fields{"message": message})
	})
	controller.Send(r.Context(), screen.DetailOnAppear{})
	controller.Wait()

	state := controller.State()
	logger.Info("Detail screen rendered", port.Fields{"status": state.Detail.Status().String()})
	RespondWithJSON(w, statusFor(state.Detail.Status()), state)
}

// statusFor: системная ошибка каталога - 502, все остальное - валидный снимок экрана
func statusFor(status screen.Status) int {
	switch status {
	case screen.StatusSystemError:
		return http.StatusBadGateway
	case screen.StatusBusinessError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusOK
	}
}
