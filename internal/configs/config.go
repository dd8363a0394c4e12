package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"marketplace-client/internal/constants"

	"github.com/joho/godotenv"
)

type CatalogConfig struct {
	BaseURL string
	SiteID  string
	Timeout time.Duration
	// SearchLimit - размер одной страницы поиска
	SearchLimit int
	// SimulatedDelay - задержка симулятора; отрицательное значение отключает ее
	SimulatedDelay time.Duration
	// Parallelism - сколько запросов к API каталога идут одновременно, 0 - без ограничения
	Parallelism int
}

type RESTconfig struct {
	PORT           string
	AllowedOrigins []string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Catalog      CatalogConfig
	Rest         RESTconfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из .env и переменных окружения.
// Отсутствующий .env не ошибка: клиент работает на значениях по умолчанию.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not parse .env file (path: %v): %w", envPath, err)
		}
		log.Printf("Info: .env file not found (path: %v), using environment and defaults\n", envPath)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "marketplace-client")

	cfg.Catalog.BaseURL = getEnvAsString("CATALOG_BASE_URL", constants.DefaultBaseURL)
	cfg.Catalog.SiteID = getEnvAsString("CATALOG_SITE_ID", constants.DefaultSiteID)
	cfg.Catalog.Timeout = getEnvAsDuration("CATALOG_TIMEOUT", constants.DefaultRequestTimeout)
	cfg.Catalog.SearchLimit = getEnvAsInt("SEARCH_LIMIT", constants.DefaultSearchLimit)
	cfg.Catalog.SimulatedDelay = getEnvAsDuration("SIMULATED_DELAY", constants.DefaultSimulatedDelay)
	cfg.Catalog.Parallelism = getEnvAsInt("CATALOG_PARALLELISM", constants.DefaultParallelism)

	if cfg.Catalog.BaseURL == "" {
		return nil, errors.New("CATALOG_BASE_URL must not be empty")
	}
	if cfg.Catalog.SearchLimit <= 0 {
		log.Printf("Warning: SEARCH_LIMIT must be positive, got %d. Using default value: %d\n", cfg.Catalog.SearchLimit, constants.DefaultSearchLimit)
		cfg.Catalog.SearchLimit = constants.DefaultSearchLimit
	}

	if cfg.Catalog.Parallelism < 0 {
		log.Printf("Warning: CATALOG_PARALLELISM must not be negative, got %d. Using default value: %d\n", cfg.Catalog.Parallelism, constants.DefaultParallelism)
		cfg.Catalog.Parallelism = constants.DefaultParallelism
	}

	cfg.Rest.PORT = getEnvAsString("HTTP_PORT", "8080")
	cfg.Rest.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsDuration принимает "30s", "300ms" и т.п.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valDur, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valDur
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
