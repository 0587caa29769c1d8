package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"userhub/config"
	deliverycontext "userhub/internal/delivery/context"
	"userhub/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger sends GORM output through the request-scoped slog logger when one is
// on the context, so query logs share the request_id of the call that issued them.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < min || l.logger == nil {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "GORM message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed queries as errors, slow ones as warnings and the rest at debug in Info mode.
// Not-found lookups are expected and never logged as failures; cancelled queries are warnings.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, message, extra := l.classify(err, elapsed)
	if message == "" {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	attrs = append(attrs, extra...)

	l.loggerFor(ctx).LogAttrs(ctx, level, message, attrs...)
}

func (l *gormSlogLogger) classify(err error, elapsed time.Duration) (slog.Level, string, []slog.Attr) {
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		// a miss is a normal outcome, treat it like success
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		if l.level >= logger.Warn {
			return slog.LevelWarn, "GORM query cancelled", []slog.Attr{slog.String("error", err.Error())}
		}

		return 0, "", nil
	case err != nil:
		if l.level >= logger.Error {
			return slog.LevelError, "GORM query failed", []slog.Attr{slog.String("error", err.Error())}
		}

		return 0, "", nil
	}

	if l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn {
		return slog.LevelWarn, "GORM slow query", []slog.Attr{slog.Duration("slowThreshold", l.slowThreshold)}
	}
	if l.level >= logger.Info {
		return slog.LevelDebug, "GORM query", nil
	}

	return 0, "", nil
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
