package gorm

import (
	"time"

	"gorm.io/gorm/logger"

	"todo-tracker/pkg/log"
)

const slowQueryThreshold = 200 * time.Millisecond

// zapWriter forwards gorm's slow query and error lines to the application logger.
type zapWriter struct{}

func (zapWriter) Printf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// newLogger reports failed and slow queries. Missing rows are an expected outcome and stay silent.
func newLogger(writer logger.Writer) logger.Interface {
	return logger.New(writer, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
