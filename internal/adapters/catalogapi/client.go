package catalogapi

import (
	"context"
	"encoding/json"

	"marketplace-client/internal/contextkeys"
	"marketplace-client/internal/core/domain"
	"marketplace-client/internal/core/port"
)

// Client - типизированный клиент API каталога с резервным бэкендом.
// Не хранит состояния запросов, один экземпляр разделяется всеми экранами.
type Client struct {
	transport Transport
	fallback  Fallback
}

// NewClient - конструктор. fallback может быть nil, тогда 403 становится ошибкой
func NewClient(transport Transport, fallback Fallback) *Client {
	return &Client{
		transport: transport,
		fallback:  fallback,
	}
}

// Fetch выполняет запрос и декодирует тело в T.
// Ответ резервного бэкенда проходит через тот же декодер, что и реальный.
func Fetch[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var result T

	body, err := c.exchange(ctx, req)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(body, &result); err != nil {
		decodeErr := domain.NewDecodingError(err)
		contextkeys.LoggerFromContext(ctx).Error("Failed to decode catalog response", decodeErr, port.Fields{
			"component": "CatalogClient",
			"path":      req.Path,
		})
		var zero T
		return zero, decodeErr
	}

	return result, nil
}

func (c *Client) exchange(ctx context.Context, req Request) ([]byte, error) {
	outcome, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	if outcome.Kind != OutcomeDegraded {
		return outcome.Body, nil
	}

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "CatalogClient"})
	if c.fallback == nil {
		err := domain.NewInvalidResponseError(outcome.StatusCode, nil)
		logger.Error("Access denied and no fallback configured", err, port.Fields{"path": req.Path})
		return nil, err
	}

	logger.Info("Serving request from simulated backend", port.Fields{"path": req.Path})
	body, err := c.fallback.Respond(ctx, req)
	if err != nil {
		logger.Error("Simulated backend failed", err, port.Fields{"path": req.Path})
		return nil, err
	}
	return body, nil
}
