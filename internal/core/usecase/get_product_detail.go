package usecase

import (
	"context"

	"marketplace-client/internal/contextkeys"
	"marketplace-client/internal/core/domain"
	"marketplace-client/internal/core/port"
)

// GetProductDetailUseCase загружает карточку товара
type GetProductDetailUseCase struct {
	catalog port.CatalogRepositoryPort
}

func NewGetProductDetailUseCase(catalog port.CatalogRepositoryPort) *GetProductDetailUseCase {
	return &GetProductDetailUseCase{catalog: catalog}
}

func (uc *GetProductDetailUseCase) Execute(ctx context.Context, itemID string) (domain.ProductDetail, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetProductDetail",
		"item_id":  itemID,
	})
	ucLogger.Debug("Loading product detail", nil)

	detail, err := uc.catalog.GetProductDetail(ctx, itemID)
	if err != nil {
		apiErr := domain.AsAPIError(err)
		ucLogger.Error("Failed to load product detail", apiErr, port.Fields{"kind": apiErr.Kind.String()})
		return domain.ProductDetail{}, apiErr
	}

	ucLogger.Info("Product detail loaded", port.Fields{"title": detail.Title})
	return detail, nil
}
