package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/logging"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM output through the request-scoped slog logger.
type GormLogger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(level gormlogger.LogLevel, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{level: level, slowThreshold: slowThreshold}
}

// ParseGormLogLevel maps config values (silent, error, warn, info) to GORM levels.
func ParseGormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	copy := *l
	copy.level = level
	return &copy
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level < gormlogger.Info {
		return
	}
	logging.FromContext(ctx).Info(msg, slog.String("component", "gorm"), slog.Any("data", data))
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level < gormlogger.Warn {
		return
	}
	logging.FromContext(ctx).Warn(msg, slog.String("component", "gorm"), slog.Any("data", data))
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level < gormlogger.Error {
		return
	}
	logging.FromContext(ctx).Error(msg, slog.String("component", "gorm"), slog.Any("data", data))
}

// Trace logs failed statements as errors, slow ones as warnings and the rest at debug.
// Record-not-found is an expected lookup miss and is not logged.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		l.logQuery(ctx, slog.LevelError, fc, elapsed, err)
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.logQuery(ctx, slog.LevelWarn, fc, elapsed, nil)
	case l.level >= gormlogger.Info:
		l.logQuery(ctx, slog.LevelDebug, fc, elapsed, nil)
	}
}

func (l *GormLogger) logQuery(ctx context.Context, level slog.Level, fc func() (string, int64), elapsed time.Duration, err error) {
	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("component", "gorm"),
		slog.String("sql", strings.TrimSpace(sql)),
		slog.Int64("duration_ms", elapsed.Milliseconds()),
	}
	if rows >= 0 {
		attrs = append(attrs, slog.Int64("rows_affected", rows))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	logging.FromContext(ctx).LogAttrs(ctx, level, "gorm.query", attrs...)
}

var _ gormlogger.Interface = (*GormLogger)(nil)
