package catalogapi

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"marketplace-client/internal/constants"
	"marketplace-client/internal/contextkeys"
	"marketplace-client/internal/core/domain"
	"marketplace-client/internal/core/port"

	"github.com/gocolly/colly/v2"
)

var (
	errMissingHost = errors.New("missing scheme or host")
	errNoResponse  = errors.New("no http response received")
)

type TransportConfig struct {
	BaseURL        string
	UserAgent      string
	AcceptEncoding string
	Timeout        time.Duration
	// Parallelism ограничивает число одновременных запросов к API, 0 - без ограничения
	Parallelism int
}

// CollyTransport ходит в API каталога через colly коллектор
type CollyTransport struct {
	// родительский коллектор, клоны наследуют таймаут и лимиты
	collector *colly.Collector
	cfg       TransportConfig
}

// NewCollyTransport - конструктор
func NewCollyTransport(cfg TransportConfig) (*CollyTransport, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = constants.DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = constants.DefaultUserAgent
	}
	if cfg.AcceptEncoding == "" {
		cfg.AcceptEncoding = constants.DefaultAcceptEncoding
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = constants.DefaultRequestTimeout
	}

	c := colly.NewCollector(
		colly.AllowURLRevisit(),
		colly.UserAgent(cfg.UserAgent),
		// статусы классифицируем сами, в том числе 403
		colly.ParseHTTPErrorResponse(),
	)
	c.SetRequestTimeout(cfg.Timeout)

	if cfg.Parallelism > 0 {
		err := c.Limit(&colly.LimitRule{
			DomainGlob:  "*",
			Parallelism: cfg.Parallelism,
		})
		if err != nil {
			return nil, fmt.Errorf("CollyTransport: failed to set limit rule: %w", err)
		}
	}

	return &CollyTransport{collector: c, cfg: cfg}, nil
}

// Do выполняет один запрос. 403 возвращается как OutcomeDegraded, а не как ошибка
func (t *CollyTransport) Do(ctx context.Context, req Request) (Outcome, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "CatalogTransport"})

	targetURL, err := BuildURL(t.cfg.BaseURL, req)
	if err != nil {
		logger.Error("Failed to build request URL", err, port.Fields{"path": req.Path})
		return Outcome{}, err
	}

	collector := t.collector.Clone()
	collector.ParseHTTPErrorResponse = true
	collector.Context = ctx

	var (
		outcome   Outcome
		responded bool
	)

	collector.OnRequest(func(r *colly.Request) {
		logger.Info("Sending request to catalog api", port.Fields{
			"url":    r.URL.String(),
			"method": r.Method,
		})
	})

	collector.OnResponse(func(r *colly.Response) {
		responded = true
		outcome.StatusCode = r.StatusCode
		outcome.Body = r.Body
		if r.Headers != nil && isDeflate(r.Headers.Get("Content-Encoding")) {
			// gzip colly распаковывает сам, deflate - нет
			body, err := inflate(r.Body)
			if err != nil {
				logger.Warn("Failed to inflate deflate-encoded body", port.Fields{"error": err.Error()})
			} else {
				outcome.Body = body
			}
		}
		logger.Info("Received response from catalog api", port.Fields{
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
			"bytes":  len(r.Body),
		})
	})

	collector.OnError(func(r *colly.Response, err error) {
		fields := port.Fields{"url": targetURL}
		if r != nil {
			fields["status"] = r.StatusCode
		}
		logger.Error("Catalog api request failed", err, fields)
	})

	hdr := http.Header{}
	hdr.Set("Accept", "application/json")
	hdr.Set("User-Agent", t.cfg.UserAgent)
	hdr.Set("Accept-Encoding", t.cfg.AcceptEncoding)
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		hdr.Set("X-Trace-ID", traceID)
	}

	reqErr := collector.Request(req.method(), targetURL, nil, nil, hdr)
	collector.Wait()

	if !responded {
		if reqErr == nil {
			reqErr = errNoResponse
		}
		return Outcome{}, domain.NewInvalidResponseError(0, reqErr)
	}

	switch {
	case outcome.StatusCode == http.StatusForbidden:
		logger.Warn("Catalog api denied access, switching to simulated backend", port.Fields{"url": targetURL})
		outcome.Kind = OutcomeDegraded
		outcome.Body = nil
		return outcome, nil
	case outcome.StatusCode < 200 || outcome.StatusCode >= 300:
		err := domain.NewInvalidResponseError(outcome.StatusCode, nil)
		logger.Error("Catalog api returned non-success status", err, port.Fields{"url": targetURL, "status": outcome.StatusCode})
		return Outcome{}, err
	}

	outcome.Kind = OutcomeOK
	return outcome, nil
}

func isDeflate(contentEncoding string) bool {
	return strings.EqualFold(strings.TrimSpace(contentEncoding), "deflate")
}

// inflate: большинство серверов шлют deflate в обертке zlib, остальные - сырой поток
func inflate(body []byte) ([]byte, error) {
	if zr, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
		out, readErr := io.ReadAll(zr)
		_ = zr.Close()
		if readErr == nil {
			return out, nil
		}
	}

	fr := flate.NewReader(bytes.NewReader(body))
	defer fr.Close()
	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("inflate body: %w", err)
	}
	return out, nil
}
