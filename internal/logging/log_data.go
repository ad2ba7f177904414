package logging

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type contextKey struct{}

// LogDataKey is the context key under which the per-request LogData is stored.
var LogDataKey = contextKey{}

// GetLogData returns the request's LogData, or nil when the request was not
// routed through the logging middleware (e.g. in unit tests).
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(LogDataKey).(*LogData)
	return logData
}

type LogData struct {
	timeItemsMutex *sync.Mutex
	timeItems      map[string]int64
	dataItems      map[string]interface{}
	logger         *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timeItemsMutex: &sync.Mutex{},
		timeItems:      make(map[string]int64),
		dataItems:      make(map[string]interface{}),
		logger:         logger,
	}
}

func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		timeSince := time.Since(startTime).Milliseconds()
		l.timeItemsMutex.Lock()
		defer l.timeItemsMutex.Unlock()
		l.timeItems[entryName] = timeSince
	}
}

func (l *LogData) AddToExistingTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		timeSince := time.Since(startTime).Milliseconds()
		l.timeItemsMutex.Lock()
		defer l.timeItemsMutex.Unlock()
		l.timeItems[entryName] += timeSince
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.dataItems[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)

	for key, value := range l.dataItems {
		entry = entry.WithField(key, value)
	}

	l.timeItemsMutex.Lock()
	defer l.timeItemsMutex.Unlock()
	for key, value := range l.timeItems {
		entry = entry.WithField(key, value)
	}

	return entry
}
