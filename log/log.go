package log

import (
	"fmt"
	stdlog "log"
	"os"
)

// Logger the logging interface of the client
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Std the default logger, writing to the standard error with the level
// prefixed
var Std Logger = New(stdlog.New(os.Stderr, "", stdlog.LstdFlags))

// New creates the logger over the standard library one
func New(l *stdlog.Logger) Logger {
	return &stdLogger{l: l}
}

type stdLogger struct {
	l *stdlog.Logger
}

func (s *stdLogger) print(level string, v []interface{}) {
	s.l.Print(level + " " + fmt.Sprint(v...))
}

func (s *stdLogger) printf(level, format string, v []interface{}) {
	s.l.Printf(level+" "+format, v...)
}

func (s *stdLogger) Debug(v ...interface{})                 { s.print("DEBUG", v) }
func (s *stdLogger) Debugf(format string, v ...interface{}) { s.printf("DEBUG", format, v) }
func (s *stdLogger) Info(v ...interface{})                  { s.print("INFO", v) }
func (s *stdLogger) Infof(format string, v ...interface{})  { s.printf("INFO", format, v) }
func (s *stdLogger) Warn(v ...interface{})                  { s.print("WARN", v) }
func (s *stdLogger) Warnf(format string, v ...interface{})  { s.printf("WARN", format, v) }
func (s *stdLogger) Error(v ...interface{})                 { s.print("ERROR", v) }
func (s *stdLogger) Errorf(format string, v ...interface{}) { s.printf("ERROR", format, v) }
