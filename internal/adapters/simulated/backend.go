package simulated

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"marketplace-client/internal/adapters/catalogapi"
	"marketplace-client/internal/constants"
	"marketplace-client/internal/contextkeys"
	"marketplace-client/internal/core/domain"
	"marketplace-client/internal/core/port"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultNicknamePrefix = "MOCK"

// Backend - детерминированный заменитель API каталога.
// Используется только как резерв catalogapi.Client при ответе 403.
type Backend struct {
	delay     time.Duration
	contracts *contracts
}

// NewBackend - конструктор. delay < 0 отключает задержку
func NewBackend(delay time.Duration) (*Backend, error) {
	c, err := loadContracts()
	if err != nil {
		return nil, fmt.Errorf("simulated backend: %w", err)
	}
	if delay == 0 {
		delay = constants.DefaultSimulatedDelay
	}
	if delay < 0 {
		delay = 0
	}
	return &Backend{delay: delay, contracts: c}, nil
}

// Respond отвечает на запрос так же, как ответил бы API каталога
func (b *Backend) Respond(ctx context.Context, req catalogapi.Request) ([]byte, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "SimulatedBackend"})

	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	var (
		payload    interface{}
		schemaName string
	)
	switch {
	case isSearchPath(req.Path):
		payload = searchFixture(nicknamePrefix(req.QueryValue(constants.QueryNickname)))
		schemaName = schemaSearchResponse
	case strings.HasPrefix(req.Path, "/items/"):
		payload = detailFixture(strings.TrimPrefix(req.Path, "/items/"))
		schemaName = schemaItemDetail
	default:
		err := domain.NewNotFoundError(fmt.Errorf("mock route not found: %s", req.Path))
		logger.Warn("No simulated route for path", port.Fields{"path": req.Path})
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("simulated backend: failed to encode payload: %w", err)
	}
	if err := b.contracts.validate(schemaName, body); err != nil {
		logger.Error("Simulated payload violates response contract", err, port.Fields{"schema": schemaName})
		return nil, fmt.Errorf("simulated backend: %w", err)
	}

	logger.Debug("Served simulated response", port.Fields{"path": req.Path, "bytes": len(body)})
	return body, nil
}

func (b *Backend) wait(ctx context.Context) error {
	if b.delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// isSearchPath: /sites/{site}/search и все, что начинается так же
func isSearchPath(path string) bool {
	rest, ok := strings.CutPrefix(path, "/sites/")
	if !ok {
		return false
	}
	_, tail, found := strings.Cut(rest, "/")
	return found && strings.HasPrefix(tail, "search")
}

func nicknamePrefix(nickname string) string {
	if nickname == "" {
		return defaultNicknamePrefix
	}
	return cases.Upper(language.Und).String(nickname)
}
