package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"marketplace-client/internal/adapters/catalogapi"
	logger_adapter "marketplace-client/internal/adapters/logger"
	"marketplace-client/internal/adapters/rest"
	"marketplace-client/internal/adapters/simulated"
	"marketplace-client/internal/configs"
	"marketplace-client/internal/core/port"
	"marketplace-client/internal/core/usecase"
	fluentlogger "marketplace-client/pkg/fluent_logger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	logger       port.LoggerPort
	sinks        *logger_adapter.MultiLoggerAdapter
	fluentClient *fluent.Fluent
}

func NewApp(envPath ...string) (*App, error) {
	appConfig, err := configs.LoadConfig(envPath...)
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- логгеры ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
			MaxRetry:  3,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			_ = fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- каталог: реальный API + симулятор на случай 403 ---
	transport, err := catalogapi.NewCollyTransport(catalogapi.TransportConfig{
		BaseURL:     appConfig.Catalog.BaseURL,
		Timeout:     appConfig.Catalog.Timeout,
		Parallelism: appConfig.Catalog.Parallelism,
	})
	if err != nil {
		appLogger.Error("Failed to create catalog transport", err, nil)
		return nil, fmt.Errorf("failed to create catalog transport: %w", err)
	}

	backend, err := simulated.NewBackend(appConfig.Catalog.SimulatedDelay)
	if err != nil {
		appLogger.Error("Failed to create simulated backend", err, nil)
		return nil, fmt.Errorf("failed to create simulated backend: %w", err)
	}

	catalogRepo := catalogapi.NewRepository(catalogapi.NewClient(transport, backend), appConfig.Catalog.SiteID)
	appLogger.Info("Catalog client initialized", port.Fields{
		"base_url": appConfig.Catalog.BaseURL,
		"site_id":  appConfig.Catalog.SiteID,
	})

	searchProductsUC := usecase.NewSearchProductsUseCase(catalogRepo)
	getProductDetailUC := usecase.NewGetProductDetailUseCase(catalogRepo)

	handlers := rest.NewScreenHandlers(searchProductsUC, getProductDetailUC, appConfig.Catalog.SearchLimit)
	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.AllowedOrigins, handlers, baseLogger)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		logger:       appLogger,
		sinks:        multiLogger,
		fluentClient: fluentClient,
	}, nil
}

// Run блокируется до SIGINT/SIGTERM или ошибки сервера
func (a *App) Run() error {
	defer a.shutdown()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- a.apiServer.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-serverErrors:
		if err == nil {
			return nil
		}
		a.logger.Error("HTTP server failed, shutting down", err, nil)
		return err
	}
}

func (a *App) shutdown() {
	a.logger.Info("Shutdown sequence initiated...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if err := a.sinks.Close(); err != nil {
		// fluent уже может быть недоступен, поэтому в stdout
		log.Printf("ERROR: Error closing log sinks: %v\n", err)
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
