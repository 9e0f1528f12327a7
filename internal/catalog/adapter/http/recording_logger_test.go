package http

import (
	"context"
	"fmt"
	"sync"

	"shop-ledger/internal/shared/logger"
)

type logRecord struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger keeps every line in memory so tests can assert on levels
// and structured fields.
type recordingLogger struct {
	mu      *sync.Mutex
	records *[]logRecord
	fields  map[string]interface{}
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, records: &[]logRecord{}, fields: map[string]interface{}{}}
}

func (l *recordingLogger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.records = append(*l.records, logRecord{level: level, msg: msg, fields: l.fields})
}

func (l *recordingLogger) entries() []logRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logRecord(nil), *l.records...)
}

func (l *recordingLogger) Debug(args ...interface{}) { l.log("debug", fmt.Sprint(args...)) }
func (l *recordingLogger) Info(args ...interface{})  { l.log("info", fmt.Sprint(args...)) }
func (l *recordingLogger) Warn(args ...interface{})  { l.log("warn", fmt.Sprint(args...)) }
func (l *recordingLogger) Error(args ...interface{}) { l.log("error", fmt.Sprint(args...)) }
func (l *recordingLogger) Fatal(args ...interface{}) { l.log("fatal", fmt.Sprint(args...)) }

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.log("debug", fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.log("info", fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.log("warn", fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.log("error", fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Fatalf(format string, args ...interface{}) {
	l.log("fatal", fmt.Sprintf(format, args...))
}

func (l *recordingLogger) WithFields(fields map[string]interface{}) logger.Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{mu: l.mu, records: l.records, fields: merged}
}

func (l *recordingLogger) WithContext(ctx context.Context) logger.Logger { return l }

func (l *recordingLogger) WithComponent(component string) logger.Logger {
	return l.WithFields(map[string]interface{}{"component": component})
}
