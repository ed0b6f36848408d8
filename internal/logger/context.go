package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithUserID stores the authenticated user ID in the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}

// FromContext returns a logger annotated with request_id and user_id when
// they are present in the context.
func FromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()
	if requestID := GetRequestID(ctx); requestID != "" {
		l = l.With(slog.String("request_id", requestID))
	}
	if userID := GetUserID(ctx); userID != "" {
		l = l.With(slog.String("user_id", userID))
	}
	return l
}

// CtxWarn logs a warning with context fields attached.
func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

// CtxError logs an error with context fields attached.
func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}

// CtxWithError logs an error with the underlying error attached.
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	FromContext(ctx).With(slog.String("error", err.Error())).Error(msg, args...)
}
