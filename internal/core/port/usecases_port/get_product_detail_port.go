package usecases_port

import (
	"context"
	"marketplace-client/internal/core/domain"
)

type GetProductDetailPort interface {
	Execute(ctx context.Context, itemID string) (domain.ProductDetail, error)
}
