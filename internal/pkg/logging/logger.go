// Package logging holds the process-wide logrus logger.
package logging

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text, simple, or compact
}

const (
	fieldComponent = "component"
	fieldServer    = "server"
)

// bracketed fields are printed before the message by CompactFormatter
var bracketed = []string{fieldComponent, fieldServer}

// CompactFormatter renders entries as [time][LEVEL][component][server] message (k=v, ...)
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if f.ShowTime {
		fmt.Fprintf(b, "[%s]", entry.Time.Format("15:04:05"))
	}
	fmt.Fprintf(b, "[%s]", strings.ToUpper(entry.Level.String()))

	for _, key := range bracketed {
		if v, ok := entry.Data[key]; ok {
			fmt.Fprintf(b, "[%v]", v)
		}
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != fieldComponent && k != fieldServer {
			keys = append(keys, k)
		}
	}

	if len(keys) > 0 {
		sort.Strings(keys)
		b.WriteString(" (")
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", key, entry.Data[key])
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

const timestampFormat = "2006-01-02 15:04:05"

// newFormatter maps a configured format name to a formatter. ok is false for unknown names, which
// get the text formatter.
func newFormatter(format string) (formatter logrus.Formatter, ok bool) {
	switch strings.ToLower(format) {
	case "json":
		return &logrus.JSONFormatter{TimestampFormat: timestampFormat}, true
	case "simple":
		return &CompactFormatter{}, true
	case "compact":
		return &CompactFormatter{ShowTime: true}, true
	case "text", "":
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timestampFormat}, true
	}
	return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timestampFormat}, false
}

// InitLogger replaces the global logger. It writes to stderr so stdout carries only benchmark
// reports and the MCP stream.
func InitLogger(config LogConfig) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	formatter, known := newFormatter(config.Format)
	logger.SetFormatter(formatter)

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if err != nil {
		logger.WithField("level", config.Level).Warn("Unknown log level, using info")
	}
	if !known {
		logger.WithField("format", config.Format).Warn("Unknown log format, using text")
	}

	Logger = logger
	Logger.WithFields(logrus.Fields{"level": level, "format": config.Format}).Debug("Logger initialized")
}

// GetLogger returns the global logger, creating an info-level text logger on first use.
func GetLogger() *logrus.Logger {
	if Logger == nil {
		InitLogger(LogConfig{Level: "info", Format: "text"})
	}
	return Logger
}

// WithComponent tags entries with the emitting package.
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField(fieldComponent, component)
}

// WithComponentAndServer additionally tags entries with the benchmark target.
func WithComponentAndServer(component, server string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		fieldComponent: component,
		fieldServer:    server,
	})
}
