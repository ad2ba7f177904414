package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware installs a fresh LogData into every request context and emits a
// completion line with the accumulated timings and data items.
func Middleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		endTimer := logData.AddTiming("durationMs")
		next(huma.WithValue(ctx, LogDataKey, logData))
		endTimer()

		operationID := "unknown"
		if op := ctx.Operation(); op != nil {
			operationID = op.OperationID
		}
		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
