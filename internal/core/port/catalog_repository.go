package port

import (
	"context"
	"marketplace-client/internal/core/domain"
)

// CatalogRepositoryPort объединяет операции чтения каталога.
// Ошибки - *domain.APIError.
type CatalogRepositoryPort interface {
	// SearchProducts ищет товары продавца по nickname, одна страница с offset=0
	SearchProducts(ctx context.Context, nickname string, limit int) (domain.SearchResult, error)

	// GetProductDetail возвращает карточку товара по его id
	GetProductDetail(ctx context.Context, itemID string) (domain.ProductDetail, error)
}
