package metrics

import (
	"net/http"
	"strconv"
	"time"

	"fulfillment/pkg/logger"

	"github.com/gorilla/mux"
)

// пробы оркестратора и сбор метрик не пишутся в лог, только в метрики
var quietRoutes = map[string]struct{}{
	"/healthcheck": {},
	"/metrics":     {},
	"/ping":        {},
}

// Middleware пишет длительность и статус запроса в Prometheus с шаблоном роута вместо пути,
// чтобы id заказов не раздували кардинальность.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			HTTPRequestsInFlight.Inc()
			defer HTTPRequestsInFlight.Dec()

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)
			handlerPath := routeTemplate(r)

			HTTPRequestDuration.WithLabelValues(r.Method, handlerPath, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, handlerPath, statusCode).Inc()

			if _, quiet := quietRoutes[handlerPath]; quiet {
				return
			}

			reqLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("status", statusCode),
				logger.NewField("duration", duration.String()),
			)
			if rw.statusCode >= http.StatusInternalServerError {
				reqLog.Warn("HTTP request failed")
				return
			}
			reqLog.Info("HTTP request")
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return r.URL.Path
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return r.URL.Path
	}
	return template
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
