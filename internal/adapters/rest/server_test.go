package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	logger_adapter "marketplace-client/internal/adapters/logger"
	"marketplace-client/internal/contextkeys"
	"marketplace-client/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearch struct {
	result    domain.SearchResult
	err       error
	gotQuery  string
	gotLimit  int
	gotTrace  string
	callCount int
}

func (s *stubSearch) Execute(ctx context.Context, query string, limit int) (domain.SearchResult, error) {
	s.callCount++
	s.gotQuery, s.gotLimit = query, limit
	s.gotTrace = contextkeys.TraceIDFromContext(ctx)
	return s.result, s.err
}

type stubDetail struct {
	err error
}

func (s *stubDetail) Execute(_ context.Context, itemID string) (domain.ProductDetail, error) {
	if s.err != nil {
		return domain.ProductDetail{}, s.err
	}
	return domain.ProductDetail{ID: itemID, Title: "Mocked " + itemID + " Title", Price: 12345.99}, nil
}

func newTestRouter(search *stubSearch, detail *stubDetail) http.Handler {
	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard, Level: slog.LevelError})
	return NewRouter([]string{"*"}, NewScreenHandlers(search, detail, 30), logger)
}

func doGet(t *testing.T, h http.Handler, target string, header http.Header) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func TestHandleSearchProducts_Success(t *testing.T) {
	search := &stubSearch{result: domain.SearchResult{
		Products: []domain.Product{{ID: "ACME_001"}, {ID: "ACME_002"}},
		Total:    2,
	}}
	h := newTestRouter(search, &stubDetail{})

	rec, body := doGet(t, h, "/api/v1/products?nickname=acme", http.Header{"X-Trace-Id": {"trace-42"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-42", rec.Header().Get("X-Trace-ID"))
	assert.Equal(t, "acme", search.gotQuery)
	assert.Equal(t, 30, search.gotLimit)
	assert.Equal(t, "trace-42", search.gotTrace)

	assert.Equal(t, "acme", body["search_query"])
	assert.EqualValues(t, 2, body["total_results"])
	products := body["products"].(map[string]any)
	assert.Equal(t, "success", products["status"])
	assert.Len(t, products["data"], 2)
	routes := body["routes"].(map[string]any)
	assert.Equal(t, "commerce_detail?itemId=ACME_001", routes["ACME_001"])
}

func TestHandleSearchProducts_BlankNicknameStaysInitial(t *testing.T) {
	search := &stubSearch{}
	h := newTestRouter(search, &stubDetail{})

	rec, body := doGet(t, h, "/api/v1/products?nickname=%20%20", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, search.callCount)
	assert.Equal(t, "initial", body["products"].(map[string]any)["status"])
	assert.NotContains(t, body, "routes")
}

func TestHandleSearchProducts_EmptyResult(t *testing.T) {
	h := newTestRouter(&stubSearch{result: domain.SearchResult{Total: 4}}, &stubDetail{})

	rec, body := doGet(t, h, "/api/v1/products?nickname=nobody&limit=5", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "empty", body["products"].(map[string]any)["status"])
	assert.EqualValues(t, 0, body["total_results"])
}

func TestHandleSearchProducts_CustomLimit(t *testing.T) {
	search := &stubSearch{}
	h := newTestRouter(search, &stubDetail{})

	doGet(t, h, "/api/v1/products?nickname=acme&limit=5", nil)
	assert.Equal(t, 5, search.gotLimit)
}

func TestHandleSearchProducts_BadLimit(t *testing.T) {
	for _, limit := range []string{"abc", "0", "-1"} {
		search := &stubSearch{}
		rec, body := doGet(t, newTestRouter(search, &stubDetail{}), "/api/v1/products?nickname=acme&limit="+limit, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, body["error"], "limit")
		assert.Zero(t, search.callCount)
	}
}

func TestHandleSearchProducts_FailureIsSystemError(t *testing.T) {
	h := newTestRouter(&stubSearch{err: domain.NewInvalidResponseError(500, nil)}, &stubDetail{})

	rec, body := doGet(t, h, "/api/v1/products?nickname=acme", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	products := body["products"].(map[string]any)
	assert.Equal(t, "system_error", products["status"])
	assert.Equal(t, "network_error", products["code"])
	assert.Equal(t, "invalid response: status 500", products["message"])
}

func TestHandleGetProductDetail(t *testing.T) {
	h := newTestRouter(&stubSearch{}, &stubDetail{})

	rec, body := doGet(t, h, "/api/v1/items/MLA123", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	assert.Equal(t, "MLA123", body["item_id"])
	detail := body["detail"].(map[string]any)
	assert.Equal(t, "success", detail["status"])
	data := detail["data"].(map[string]any)
	assert.Equal(t, "Mocked MLA123 Title", data["title"])
	assert.InDelta(t, 12345.99, data["price"], 1e-9)
}

func TestHandleGetProductDetail_Failure(t *testing.T) {
	h := newTestRouter(&stubSearch{}, &stubDetail{err: domain.NewNotFoundError(errors.New("no route"))})

	rec, body := doGet(t, h, "/api/v1/items/X", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	detail := body["detail"].(map[string]any)
	assert.Equal(t, "system_error", detail["status"])
	assert.Equal(t, "not found: no route", detail["message"])
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec, body := doGet(t, newTestRouter(&stubSearch{}, &stubDetail{}), "/api/v2/nothing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", body["error"])
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestRouter(&stubSearch{}, &stubDetail{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/products", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
