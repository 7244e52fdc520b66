package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type traceIDKey struct{}

// WithTraceID stores the request trace ID so audit entries can be correlated with access logs
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

type AuditLogger struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
		now:    time.Now,
	}
}

func (al *AuditLogger) LogBudgetChange(ctx context.Context, userID uuid.UUID, operation string, oldCeiling, newCeiling decimal.Decimal) {
	al.logger.InfoContext(ctx, "budget ceiling change",
		slog.String("event_type", "budget_ceiling_change"),
		slog.String("user_id", userID.String()),
		slog.String("operation", operation),
		slog.String("old_ceiling", oldCeiling.String()),
		slog.String("new_ceiling", newCeiling.String()),
		slog.Time("timestamp", al.now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

// LogBreakerStateChange is logged at warn level when the breaker opens so outages stand out
func (al *AuditLogger) LogBreakerStateChange(ctx context.Context, store string, oldState, newState BreakerState) {
	level := slog.LevelInfo
	if newState == BreakerOpen {
		level = slog.LevelWarn
	}
	al.logger.Log(ctx, level, "store breaker state change",
		slog.String("event_type", "store_breaker_state_change"),
		slog.String("store", store),
		slog.String("old_state", oldState.String()),
		slog.String("new_state", newState.String()),
		slog.Time("timestamp", al.now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

// TraceIDFromContext returns "" when the context carries no trace ID
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}

	return ""
}
