// Package gorm routes gorm's SQL logging into zerolog.
package gorm

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

const slowThreshold = 200 * time.Millisecond

// Writer implements gorm's logger.Writer on top of a zerolog logger.
type Writer struct {
	logger *zerolog.Logger
	level  zerolog.Level
}

// Printf writes one gorm log line.
func (w Writer) Printf(format string, args ...interface{}) {
	w.logger.WithLevel(w.level).
		Str("component", "gorm").
		Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// NewWriter returns a Writer logging at level. A nil logger uses the global one.
func NewWriter(l *zerolog.Logger, level zerolog.Level) Writer {
	if l == nil {
		l = &log.Logger
	}

	return Writer{logger: l, level: level}
}

// New returns a gorm logger. Dev mode logs every statement, otherwise only
// slow queries and errors are reported.
func New(devMode bool) gormlogger.Interface {
	level := gormlogger.Warn
	writerLevel := zerolog.WarnLevel

	if devMode {
		level = gormlogger.Info
		writerLevel = zerolog.DebugLevel
	}

	return gormlogger.New(NewWriter(nil, writerLevel), gormlogger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
