package contextkeys

import (
	"context"
)

type traceIDKeyType struct{}

var traceIDKey = traceIDKeyType{}

// ContextWithTraceID помещает trace_id в контекст. Он уходит в каталог
// заголовком X-Trace-ID и попадает во все записи лога одного экрана
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext возвращает пустую строку, если trace_id не задан
func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// EnsureTraceID оставляет trace_id вызывающего (например, REST запроса),
// а если его нет, то назначает fallback. Возвращает итоговый trace_id
func EnsureTraceID(ctx context.Context, fallback string) (context.Context, string) {
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		return ctx, traceID
	}
	if fallback == "" {
		return ctx, ""
	}
	return ContextWithTraceID(ctx, fallback), fallback
}
