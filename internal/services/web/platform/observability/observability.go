// Package observability provides request logging and tracing middleware for
// the web service.
package observability

import (
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sofealabs/impactboard/internal/services/web/platform/httpx"
)

const tracerName = "github.com/sofealabs/impactboard/internal/services/web"

// statusWriter captures the response status and byte count for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(payload []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(payload)
	w.bytes += n
	return n, err
}

// RequestLogger logs one line per request with method, path, status, size,
// latency, and request id.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(recorder, r)
			status := recorder.status
			if status == 0 {
				status = http.StatusOK
			}
			requestID := "-"
			path := "-"
			method := "-"
			if r != nil {
				method = r.Method
				path = r.URL.Path
				if rid := strings.TrimSpace(r.Header.Get("X-Request-ID")); rid != "" {
					requestID = rid
				}
			}
			logger.Printf(
				"method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				method, path, status, recorder.bytes, time.Since(start), requestID,
			)
		})
	}
}

// TraceRequests opens one server span per request using the global tracer
// provider. With no provider registered this is a no-op.
func TraceRequests() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			tracer := otel.Tracer(tracerName)
			ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			recorder := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(recorder, r.WithContext(ctx))
			status := recorder.status
			if status == 0 {
				status = http.StatusOK
			}
			span.SetAttributes(attribute.Int("http.status_code", status))
		})
	}
}
