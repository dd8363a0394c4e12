package domain

import (
	"errors"
	"fmt"
)

// APIErrorKind - вид ошибки при обращении к каталогу
type APIErrorKind int

const (
	KindInvalidRequest APIErrorKind = iota + 1
	KindInvalidResponse
	KindDecoding
	KindNotFound
)

func (k APIErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindInvalidResponse:
		return "invalid_response"
	case KindDecoding:
		return "decoding"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Сентинелы для errors.Is
var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidResponse = errors.New("invalid response")
	ErrDecoding        = errors.New("decoding failed")
	ErrNotFound        = errors.New("not found")
)

// APIError несет вид ошибки, HTTP статус (если был) и причину
type APIError struct {
	Kind       APIErrorKind
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	msg := e.sentinel().Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is позволяет сравнивать с сентинелами: errors.Is(err, domain.ErrDecoding)
func (e *APIError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *APIError) sentinel() error {
	switch e.Kind {
	case KindInvalidRequest:
		return ErrInvalidRequest
	case KindInvalidResponse:
		return ErrInvalidResponse
	case KindDecoding:
		return ErrDecoding
	case KindNotFound:
		return ErrNotFound
	default:
		return errors.New("catalog api error")
	}
}

func NewInvalidRequestError(err error) *APIError {
	return &APIError{Kind: KindInvalidRequest, Err: err}
}

// NewInvalidResponseError: statusCode == 0 означает, что HTTP ответа не было вовсе
func NewInvalidResponseError(statusCode int, err error) *APIError {
	return &APIError{Kind: KindInvalidResponse, StatusCode: statusCode, Err: err}
}

func NewDecodingError(err error) *APIError {
	return &APIError{Kind: KindDecoding, Err: err}
}

func NewNotFoundError(err error) *APIError {
	return &APIError{Kind: KindNotFound, Err: err}
}

// AsAPIError возвращает ошибку каталога как есть, а любую другую оборачивает в Decoding
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewDecodingError(err)
}
