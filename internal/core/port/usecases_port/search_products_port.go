package usecases_port

import (
	"context"
	"marketplace-client/internal/core/domain"
)

type SearchProductsPort interface {
	Execute(ctx context.Context, query string, limit int) (domain.SearchResult, error)
}
