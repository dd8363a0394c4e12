package catalogapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"marketplace-client/internal/core/domain"
)

// Request описывает обращение к API каталога: путь относительно базового URL,
// query-параметры и HTTP метод
type Request struct {
	Path   string
	Query  url.Values
	Method string
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(r.Method)
}

// QueryValue возвращает первое значение параметра или пустую строку
func (r Request) QueryValue(key string) string {
	if r.Query == nil {
		return ""
	}
	return r.Query.Get(key)
}

// OutcomeKind - чем закончился обмен с удаленным API
type OutcomeKind int

const (
	// OutcomeOK - 2xx, в Body тело ответа
	OutcomeOK OutcomeKind = iota
	// OutcomeDegraded - доступ запрещен (403), запрос нужно отдать резервному бэкенду
	OutcomeDegraded
)

func (k OutcomeKind) String() string {
	if k == OutcomeDegraded {
		return "degraded"
	}
	return "ok"
}

type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Body       []byte
}

// Transport выполняет HTTP обмен и классифицирует статус.
// Ошибки - *domain.APIError (InvalidRequest или InvalidResponse).
type Transport interface {
	Do(ctx context.Context, req Request) (Outcome, error)
}

// Fallback отвечает на запросы, которые удаленный API отклонил с 403
type Fallback interface {
	Respond(ctx context.Context, req Request) ([]byte, error)
}

// BuildURL склеивает базовый URL, путь и query-параметры
func BuildURL(baseURL string, req Request) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + req.Path)
	if err != nil {
		return "", domain.NewInvalidRequestError(err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", domain.NewInvalidRequestError(&url.Error{Op: "parse", URL: baseURL + req.Path, Err: errMissingHost})
	}
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}
	return u.String(), nil
}
