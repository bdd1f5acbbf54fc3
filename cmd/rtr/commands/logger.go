package commands

import (
	"io"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
	log "github.com/sirupsen/logrus"
)

// logrusLogger adapts a logrus entry to rtr.Logger.
type logrusLogger struct {
	entry *log.Entry
}

var _ rtr.Logger = (*logrusLogger)(nil)

func newLogger(out io.Writer, verbose bool) *logrusLogger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.WarnLevel)

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return &logrusLogger{entry: log.NewEntry(logger)}
}

func (l *logrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}
