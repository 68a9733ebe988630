package gosnowconn

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// SnowconnLogger is the logging surface used throughout the package. The
// default logger writes nothing below error level; callers that want query
// tracing call SetLogLevel("debug").
type SnowconnLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugln(args ...interface{})
	Infoln(args ...interface{})
	Errorln(args ...interface{})
	WithContext(ctx context.Context) *logrus.Entry
	SetLogLevel(level string) error
	SetOutput(output io.Writer)
}

type defaultLogger struct {
	inner *logrus.Logger
}

// CreateDefaultLogger returns a logrus-backed logger at error level.
func CreateDefaultLogger() SnowconnLogger {
	inner := logrus.New()
	inner.SetLevel(logrus.ErrorLevel)
	return &defaultLogger{inner: inner}
}

func (log *defaultLogger) Debugf(format string, args ...interface{}) {
	log.inner.Debugf(format, args...)
}

func (log *defaultLogger) Infof(format string, args ...interface{}) {
	log.inner.Infof(format, args...)
}

func (log *defaultLogger) Errorf(format string, args ...interface{}) {
	log.inner.Errorf(format, args...)
}

func (log *defaultLogger) Debugln(args ...interface{}) {
	log.inner.Debugln(args...)
}

func (log *defaultLogger) Infoln(args ...interface{}) {
	log.inner.Infoln(args...)
}

func (log *defaultLogger) Errorln(args ...interface{}) {
	log.inner.Errorln(args...)
}

func (log *defaultLogger) WithContext(ctx context.Context) *logrus.Entry {
	return log.inner.WithContext(ctx)
}

func (log *defaultLogger) SetLogLevel(level string) error {
	actualLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.inner.SetLevel(actualLevel)
	return nil
}

func (log *defaultLogger) SetOutput(output io.Writer) {
	log.inner.SetOutput(output)
}

var logger = CreateDefaultLogger()

// GetLogger returns the package logger so callers can adjust its level or
// output destination.
func GetLogger() SnowconnLogger {
	return logger
}
