package screen

import "encoding/json"

// Status - вариант UiState
type Status int

const (
	StatusInitial Status = iota
	StatusLoading
	StatusSuccess
	StatusEmpty
	StatusBusinessError
	StatusSystemError
)

func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "initial"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusEmpty:
		return "empty"
	case StatusBusinessError:
		return "business_error"
	case StatusSystemError:
		return "system_error"
	default:
		return "unknown"
	}
}

// UiState - размеченное объединение состояний асинхронных данных.
// Значение неизменяемо: создается только конструкторами ниже,
// поэтому одновременно выполняется ровно один вариант.
type UiState[T any] struct {
	status  Status
	value   T
	code    string
	message string
}

func Initial[T any]() UiState[T] { return UiState[T]{status: StatusInitial} }

func Loading[T any]() UiState[T] { return UiState[T]{status: StatusLoading} }

func Success[T any](value T) UiState[T] { return UiState[T]{status: StatusSuccess, value: value} }

func Empty[T any]() UiState[T] { return UiState[T]{status: StatusEmpty} }

func BusinessError[T any](code, message string) UiState[T] {
	return UiState[T]{status: StatusBusinessError, code: code, message: message}
}

func SystemError[T any](code, message string) UiState[T] {
	return UiState[T]{status: StatusSystemError, code: code, message: message}
}

func (s UiState[T]) Status() Status { return s.status }

// Value возвращает данные только для Success
func (s UiState[T]) Value() (T, bool) {
	if s.status != StatusSuccess {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Failure возвращает код и сообщение для BusinessError и SystemError
func (s UiState[T]) Failure() (code, message string, ok bool) {
	if s.status != StatusBusinessError && s.status != StatusSystemError {
		return "", "", false
	}
	return s.code, s.message, true
}

// Visitor - по одной ветке на вариант, как экран выбирает, что рисовать
type Visitor[T any, R any] struct {
	Initial       func() R
	Loading       func() R
	Success       func(T) R
	Empty         func() R
	BusinessError func(code, message string) R
	SystemError   func(code, message string) R
}

// Fold вызывает ровно одну ветку визитора. Nil-ветка дает нулевое значение R
func Fold[T any, R any](s UiState[T], v Visitor[T, R]) R {
	var zero R
	switch s.status {
	case StatusInitial:
		if v.Initial != nil {
			return v.Initial()
		}
	case StatusLoading:
		if v.Loading != nil {
			return v.Loading()
		}
	case StatusSuccess:
		if v.Success != nil {
			return v.Success(s.value)
		}
	case StatusEmpty:
		if v.Empty != nil {
			return v.Empty()
		}
	case StatusBusinessError:
		if v.BusinessError != nil {
			return v.BusinessError(s.code, s.message)
		}
	case StatusSystemError:
		if v.SystemError != nil {
			return v.SystemError(s.code, s.message)
		}
	}
	return zero
}

type uiStateJSON[T any] struct {
	Status  string `json:"status"`
	Data    *T     `json:"data,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// MarshalJSON отдает состояние слою представления в виде {"status": ..., ...}
func (s UiState[T]) MarshalJSON() ([]byte, error) {
	out := uiStateJSON[T]{Status: s.status.String()}
	if s.status == StatusSuccess {
		value := s.value
		out.Data = &value
	}
	if code, message, ok := s.Failure(); ok {
		out.Code = code
		out.Message = message
	}
	return json.Marshal(out)
}
