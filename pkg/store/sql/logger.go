//nolint:goprintffuncname
package sql

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// loggerAdaptor routes gorm's statement logging into logrus.
type loggerAdaptor struct {
	Logger *logrus.Logger
	Config LoggerAdaptorConfig
}

type LoggerAdaptorConfig struct {
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
}

//nolint:ireturn
func NewLoggerAdaptor(l *logrus.Logger, cfg LoggerAdaptorConfig) logger.Interface {
	return &loggerAdaptor{l, cfg}
}

// LogMode is a no-op, the level is owned by the logrus logger.
//
//nolint:ireturn
func (l *loggerAdaptor) LogMode(_ logger.LogLevel) logger.Interface {
	return l
}

const (
	maximumCallerDepth int = 15
	minimumCallerDepth int = 4
)

// entry returns a logrus entry annotated with the first caller outside gorm, which is the
// store method that issued the statement.
func (l *loggerAdaptor) entry(ctx context.Context) *logrus.Entry {
	entry := l.Logger.WithContext(ctx).WithField("component", "store")

	pcs := make([]uintptr, maximumCallerDepth)
	depth := runtime.Callers(minimumCallerDepth, pcs)
	frames := runtime.CallersFrames(pcs[:depth])

	for frame, more := frames.Next(); more; frame, more = frames.Next() {
		if strings.HasPrefix(frame.Function, "gorm.io/") {
			continue
		}

		return entry.WithField("caller", fmt.Sprintf("%s:%d", frame.File, frame.Line))
	}

	return entry
}

func (l *loggerAdaptor) Info(ctx context.Context, format string, args ...interface{}) {
	l.entry(ctx).Infof(format, args...)
}

func (l *loggerAdaptor) Warn(ctx context.Context, format string, args ...interface{}) {
	l.entry(ctx).Warnf(format, args...)
}

func (l *loggerAdaptor) Error(ctx context.Context, format string, args ...interface{}) {
	l.entry(ctx).Errorf(format, args...)
}

const nanosecondsPerMillisecond = 1e6

// Trace logs a finished statement: failures at error, slow statements at warn, and
// everything else at debug.
func (l *loggerAdaptor) Trace(
	ctx context.Context,
	begin time.Time,
	statement func() (sql string, rowsAffected int64),
	err error,
) {
	elapsed := time.Since(begin)

	var level logrus.Level

	switch {
	case err != nil && !(l.Config.IgnoreRecordNotFoundError && errors.Is(err, gorm.ErrRecordNotFound)):
		level = logrus.ErrorLevel
	case l.Config.SlowThreshold != 0 && elapsed > l.Config.SlowThreshold:
		level = logrus.WarnLevel
	default:
		level = logrus.DebugLevel
	}

	if !l.Logger.IsLevelEnabled(level) {
		return
	}

	sql, rows := statement()
	entry := l.entry(ctx).WithFields(logrus.Fields{
		"elapsed": fmt.Sprintf("%.3fms", float64(elapsed.Nanoseconds())/nanosecondsPerMillisecond),
		"sql":     sql,
	})

	if rows >= 0 {
		entry = entry.WithField("rows", rows)
	}

	switch level {
	case logrus.ErrorLevel:
		entry.WithError(err).Error("SQL error")
	case logrus.WarnLevel:
		entry.Warnf("slow SQL >= %v", l.Config.SlowThreshold)
	default:
		entry.Debug("SQL trace")
	}
}
