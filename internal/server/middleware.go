package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	correlationIDKey contextKey = "correlation_id"
	requestStartKey  contextKey = "request_start"
)

// CorrelationIDHeader carries the request correlation id in both directions.
const CorrelationIDHeader = "X-Correlation-Id"

// withCorrelationID assigns every request a correlation id, echoes it back in
// the response header and logs request completion with it.
func (s *Server) withCorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		start := time.Now()
		ctx := context.WithValue(r.Context(), correlationIDKey, correlationID)
		ctx = context.WithValue(ctx, requestStartKey, start)
		w.Header().Set(CorrelationIDHeader, correlationID)

		next.ServeHTTP(w, r.WithContext(ctx))

		s.logger.Ctx(ctx).Info("Request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("correlation_id", correlationID),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// correlationID returns the request's correlation id, if any.
func correlationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// requestStart returns when the request entered the middleware chain.
func requestStart(r *http.Request) time.Time {
	if start, ok := r.Context().Value(requestStartKey).(time.Time); ok {
		return start
	}
	return time.Now()
}
