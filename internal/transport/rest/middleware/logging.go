package middleware

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/outliner-coach/letmeknowme/internal/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets websocket upgrades pass through the recorder
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return h.Hijack()
}

// RequestLogger tags each request with an id and logs its outcome
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	log = log.Component("http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(logger.RequestIDHeader) == "" {
				r.Header.Set(logger.RequestIDHeader, uuid.New().String())
			}
			w.Header().Set(logger.RequestIDHeader, r.Header.Get(logger.RequestIDHeader))

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			entry := log.WithRequest(r).
				WithField("status", rec.status).
				WithField("duration_ms", time.Since(start).Milliseconds())
			switch {
			case rec.status >= 500:
				entry.Warn("request completed")
			case r.URL.Path == "/health" || r.URL.Path == "/metrics":
				entry.Debug("request completed")
			default:
				entry.Info("request completed")
			}
		})
	}
}
