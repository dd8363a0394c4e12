package usecase

import (
	"context"

	"marketplace-client/internal/contextkeys"
	"marketplace-client/internal/core/domain"
	"marketplace-client/internal/core/port"
)

// SearchProductsUseCase ищет товары продавца по nickname
type SearchProductsUseCase struct {
	catalog port.CatalogRepositoryPort
}

// NewSearchProductsUseCase создает новый экземпляр SearchProductsUseCase
func NewSearchProductsUseCase(catalog port.CatalogRepositoryPort) *SearchProductsUseCase {
	return &SearchProductsUseCase{catalog: catalog}
}

// Execute возвращает одну страницу результатов. Ошибки каталога
// возвращаются как есть, любые другие оборачиваются в Decoding.
func (uc *SearchProductsUseCase) Execute(ctx context.Context, query string, limit int) (domain.SearchResult, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SearchProducts",
		"query":    query,
		"limit":    limit,
	})
	ucLogger.Debug("Searching products", nil)

	result, err := uc.catalog.SearchProducts(ctx, query, limit)
	if err != nil {
		apiErr := domain.AsAPIError(err)
		ucLogger.Error("Failed to search products", apiErr, port.Fields{"kind": apiErr.Kind.String()})
		return domain.SearchResult{}, apiErr
	}

	ucLogger.Info("Products found", port.Fields{
		"products": len(result.Products),
		"total":    result.Total,
	})
	return result, nil
}
