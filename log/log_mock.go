package log

import "fmt"

// MockLogger records the lines for the assertions of the tests
type MockLogger struct {
	Lines []string
}

func (l *MockLogger) append(level, line string) {
	l.Lines = append(l.Lines, level+" "+line)
}

func (l *MockLogger) Debug(v ...interface{}) {
	l.append("DEBUG", fmt.Sprint(v...))
}
func (l *MockLogger) Debugf(format string, v ...interface{}) {
	l.append("DEBUG", fmt.Sprintf(format, v...))
}

func (l *MockLogger) Info(v ...interface{}) {
	l.append("INFO", fmt.Sprint(v...))
}
func (l *MockLogger) Infof(format string, v ...interface{}) {
	l.append("INFO", fmt.Sprintf(format, v...))
}

func (l *MockLogger) Warn(v ...interface{}) {
	l.append("WARN", fmt.Sprint(v...))
}
func (l *MockLogger) Warnf(format string, v ...interface{}) {
	l.append("WARN", fmt.Sprintf(format, v...))
}

func (l *MockLogger) Error(v ...interface{}) {
	l.append("ERROR", fmt.Sprint(v...))
}
func (l *MockLogger) Errorf(format string, v ...interface{}) {
	l.append("ERROR", fmt.Sprintf(format, v...))
}
