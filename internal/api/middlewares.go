package api

import (
	"net/http"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/observability/metrics"
	"github.com/Alexintosh/piedao-monorepo/internal/observability/tracing"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// traceMiddleware reuses the caller's trace id when present and echoes it
// back so clients can correlate logs.
func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(tracing.TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		w.Header().Set(tracing.TraceIDHeader, traceID)

		ctx := tracing.WithTraceID(r.Context(), traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func graphqlMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordGraphqlRequestDuration(time.Since(start), status)
	})
}
