package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// StdoutAuditLogger menulis audit event sebagai structured log biasa.
// Cukup untuk deployment tanpa audit sink khusus.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{logger: zap.L().Named("audit")}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.logger.Info(entry.Message,
		zap.String("action", entry.Action),
		zap.Any("meta", entry.Meta),
	)
}
