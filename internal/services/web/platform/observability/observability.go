// Package observability provides request logging and tracing middleware.
package observability

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/metrika/internal/services/web/platform/httpx"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/metrika/internal/services/web"

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(body []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(body)
	r.bytes += n
	return n, err
}

// RequestLogger logs one entry per request and binds a request-scoped logger
// to the request context for downstream handlers.
func RequestLogger(logger zerolog.Logger) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := strings.TrimSpace(r.Header.Get(httpx.RequestIDHeader))
			reqLogger := logger
			if requestID != "" {
				reqLogger = logger.With().Str("request_id", requestID).Logger()
			}
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(reqLogger.WithContext(r.Context())))

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			reqLogger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", rec.bytes).
				Dur("latency", time.Since(start)).
				Msg("http request")
		})
	}
}

// Tracing starts a server span per request. A nil tracer uses the global
// provider.
func Tracing(tracer trace.Tracer) httpx.Middleware {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
