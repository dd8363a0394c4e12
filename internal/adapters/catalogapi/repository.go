package catalogapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"marketplace-client/internal/constants"
	"marketplace-client/internal/contextkeys"
	"marketplace-client/internal/core/domain"
	"marketplace-client/internal/core/port"
)

// Repository реализует port.CatalogRepositoryPort поверх Client
type Repository struct {
	client *Client
	siteID string
}

func NewRepository(client *Client, siteID string) *Repository {
	if siteID == "" {
		siteID = constants.DefaultSiteID
	}
	return &Repository{client: client, siteID: siteID}
}

// SearchRequest собирает запрос поиска по продавцу
func SearchRequest(siteID, nickname string, limit int) Request {
	q := url.Values{}
	q.Set(constants.QueryNickname, nickname)
	q.Set(constants.QueryLimit, strconv.Itoa(limit))
	q.Set(constants.QueryOffset, "0")

	return Request{
		Path:   fmt.Sprintf("/sites/%s/search", siteID),
		Query:  q,
		Method: http.MethodGet,
	}
}

// DetailRequest собирает запрос карточки товара
func DetailRequest(itemID string) Request {
	return Request{
		Path:   "/items/" + itemID,
		Method: http.MethodGet,
	}
}

func (r *Repository) SearchProducts(ctx context.Context, nickname string, limit int) (domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "CatalogRepository"})

	resp, err := Fetch[SearchResponseDTO](ctx, r.client, SearchRequest(r.siteID, nickname, limit))
	if err != nil {
		return domain.SearchResult{}, err
	}

	products := make([]domain.Product, 0, len(resp.Results))
	for _, item := range resp.Results {
		products = append(products, MapSearchItem(item))
	}

	result := domain.SearchResult{
		Products: products,
		Total:    searchTotal(resp),
	}
	logger.Debug("Mapped search response", port.Fields{
		"products": len(result.Products),
		"total":    result.Total,
	})
	return result, nil
}

func (r *Repository) GetProductDetail(ctx context.Context, itemID string) (domain.ProductDetail, error) {
	resp, err := Fetch[ItemDetailDTO](ctx, r.client, DetailRequest(itemID))
	if err != nil {
		return domain.ProductDetail{}, err
	}
	return MapItemDetail(resp), nil
}

// searchTotal: paging.total, затем плоский total, затем число результатов
func searchTotal(resp SearchResponseDTO) int {
	if resp.Paging != nil && resp.Paging.Total != nil {
		return *resp.Paging.Total
	}
	if resp.Total != nil {
		return *resp.Total
	}
	return len(resp.Results)
}
