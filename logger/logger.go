package logger

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	c "niteout-backend/context"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

const CorrelationId = "correlation_id"

func init() {
	logger = logrus.New()
	logger.SetOutput(os.Stdout)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Fatalf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Infof(format, args...)
}

func Info(ctx context.Context, msg string) {
	entry(ctx).Info(msg)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Debug(escapeString(format, args...))
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Error(escapeString(format, args...))
}

// LogExecutionTime is meant to be deferred with the time the caller started.
func LogExecutionTime(ctx context.Context, start time.Time, name string) {
	entry(ctx).Infof("%s: took %v", name, time.Since(start))
}

func entry(ctx context.Context) *logrus.Entry {
	return logger.WithField(CorrelationId, c.GetContextValue(ctx, c.ContextKeyCorrelationID))
}

func escapeString(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	re := regexp.MustCompile(`(\n)|(\r\n)`)
	return re.ReplaceAllString(msg, "\\n ")
}
