package logging

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		log.Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware attaches a LogData to every request context and emits one
// completion line per request with its timings, status and request id.
func Middleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logData := NewLogData(log)
			logData.AddData("method", req.Method)
			logData.AddData("path", req.URL.Path)
			if reqID := middleware.GetReqID(req.Context()); reqID != "" {
				logData.AddData("requestID", reqID)
			}

			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			endTimer := logData.AddTiming("duration")
			next.ServeHTTP(ww, req.WithContext(WithLogData(req.Context(), logData)))
			endTimer()

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logData.AddData("status", status)

			if status >= http.StatusInternalServerError {
				logData.Log().Error("Handler.Request.Error")
				return
			}
			logData.Log().Info("Handler.Request.Complete")
		})
	}
}
