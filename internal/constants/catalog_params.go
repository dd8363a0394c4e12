package constants

import "time"

const (
	DefaultBaseURL = "https://api.mercadolibre.com"
	DefaultSiteID  = "MLA"

	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultAcceptEncoding = "gzip, deflate"

	DefaultRequestTimeout = 30 * time.Second
	DefaultSimulatedDelay = 300 * time.Millisecond

	// лимит одной страницы поиска для экрана списка
	DefaultSearchLimit = 30
	// DefaultParallelism - одновременных запросов к API каталога
	DefaultParallelism = 4
)

// Параметры запроса поиска
const (
	QueryNickname = "nickname"
	QueryLimit    = "limit"
	QueryOffset   = "offset"
)

// Код ошибки, который видит слой представления
const NetworkErrorCode = "network_error"
