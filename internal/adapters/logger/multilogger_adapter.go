package logger_adapter

import (
	"errors"
	"io"

	"marketplace-client/internal/core/port"
)

// MultiLoggerAdapter пишет каждую запись клиента каталога во все приемники:
// stdout всегда, Fluent Bit только если он включен в конфигурации
type MultiLoggerAdapter struct {
	loggers []port.LoggerPort
	// closers есть только у корневого логгера, производные от WithFields их не наследуют
	closers []io.Closer
}

// NewMultiloggerAdapter пропускает nil, чтобы выключенный приемник можно было передать как есть
func NewMultiloggerAdapter(loggers ...port.LoggerPort) (*MultiLoggerAdapter, error) {
	m := &MultiLoggerAdapter{}
	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		m.loggers = append(m.loggers, logger)
		if closer, ok := logger.(io.Closer); ok {
			m.closers = append(m.closers, closer)
		}
	}
	if len(m.loggers) == 0 {
		return nil, errors.New("multilogger: at least one logger is required")
	}
	return m, nil
}

func (m *MultiLoggerAdapter) Info(msg string, fields port.Fields) {
	for _, logger := range m.loggers {
		logger.Info(msg, fields)
	}
}

func (m *MultiLoggerAdapter) Warn(msg string, fields port.Fields) {
	for _, logger := range m.loggers {
		logger.Warn(msg, fields)
	}
}

func (m *MultiLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	for _, logger := range m.loggers {
		logger.Error(msg, err, fields)
	}
}

func (m *MultiLoggerAdapter) Debug(msg string, fields port.Fields) {
	for _, logger := range m.loggers {
		logger.Debug(msg, fields)
	}
}

func (m *MultiLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	enriched := make([]port.LoggerPort, 0, len(m.loggers))
	for _, logger := range m.loggers {
		enriched = append(enriched, logger.WithFields(fields))
	}
	return &MultiLoggerAdapter{loggers: enriched}
}

// Close закрывает приемники с внешним соединением (Fluent Bit) и собирает все ошибки
func (m *MultiLoggerAdapter) Close() error {
	var errs []error
	for _, closer := range m.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
