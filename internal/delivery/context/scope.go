// Package context carries per-request values from the HTTP layer down to
// the services: the request ID, a logger tagged with it and, once
// authenticated, the caller's user ID.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID both ways.
const HeaderXRequestID = "X-Request-Id"

const echoKeyUserID = "user_id"

type scopeKey struct{}

// Scope is attached once per request by the request ID middleware.
type Scope struct {
	RequestID string
	Logger    *slog.Logger
}

// Attach stores scope in the request's context.Context.
func Attach(c echo.Context, scope Scope) {
	c.SetRequest(c.Request().WithContext(WithScope(c.Request().Context(), scope)))
}

func WithScope(ctx context.Context, scope Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFrom returns the scope attached to ctx, if any.
func ScopeFrom(ctx context.Context) (Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(Scope)

	return scope, ok
}

// RequestID returns the request ID carried by ctx, or "" outside a request.
func RequestID(ctx context.Context) string {
	scope, _ := ScopeFrom(ctx)

	return scope.RequestID
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the
// service logger for background work such as the backfill job.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope, ok := ScopeFrom(ctx); ok && scope.Logger != nil {
		return scope.Logger
	}

	return fallback
}

// SetUserID records the authenticated caller and tags the scoped logger with it.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(echoKeyUserID, userID)

	if scope, ok := ScopeFrom(c.Request().Context()); ok && scope.Logger != nil {
		scope.Logger = scope.Logger.With(slog.String("user_id", userID.String()))
		Attach(c, scope)
	}
}

// GetUserID returns the authenticated user's ID, false on public routes.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(echoKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}
