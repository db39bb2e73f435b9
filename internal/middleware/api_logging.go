package middleware

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"loket-backend/internal/timeutil"

	"github.com/sirupsen/logrus"
)

// APILoggingMiddleware writes one structured log line per API request. Lines
// are handed to a background writer so a slow log sink never blocks a
// request.
type APILoggingMiddleware struct {
	logger  *logrus.Logger
	logChan chan logrus.Fields
	done    chan struct{}
}

// responseWriter wraps http.ResponseWriter to capture status code and size
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	rw.statusCode = http.StatusSwitchingProtocols
	return h.Hijack()
}

func NewAPILoggingMiddleware(logger *logrus.Logger) *APILoggingMiddleware {
	m := &APILoggingMiddleware{
		logger:  logger,
		logChan: make(chan logrus.Fields, 1000),
		done:    make(chan struct{}),
	}

	go m.asyncLogWriter()

	return m
}

func (m *APILoggingMiddleware) asyncLogWriter() {
	defer close(m.done)
	for fields := range m.logChan {
		entry := m.logger.WithFields(fields)
		status, _ := fields["status"].(int)
		switch {
		case status >= 500:
			entry.Error("api request")
		case status >= 400:
			entry.Warn("api request")
		default:
			entry.Info("api request")
		}
	}
}

// Handler returns the middleware handler
func (m *APILoggingMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if shouldSkipLogging(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := timeutil.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		fields := logrus.Fields{
			"module":        "api",
			"method":        r.Method,
			"path":          routeTemplate(r),
			"status":        wrapped.statusCode,
			"duration_ms":   float64(time.Since(start).Microseconds()) / 1000.0,
			"response_size": wrapped.bytesWritten,
			"ip":            getClientIP(r),
			"user_agent":    r.UserAgent(),
		}

		select {
		case m.logChan <- fields:
		default:
			m.logger.WithField("module", "api").Warnf("log buffer full, dropping entry for %s", r.URL.Path)
		}
	})
}

// shouldSkipLogging returns true for paths that shouldn't be logged
func shouldSkipLogging(path string) bool {
	skipPaths := []string{
		"/health",
		"/metrics",
		"/favicon.ico",
	}

	for _, skip := range skipPaths {
		if strings.HasPrefix(path, skip) {
			return true
		}
	}

	return false
}

// getClientIP extracts the client IP from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (for proxies/load balancers)
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return strings.TrimSpace(xri)
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}

	return ip
}

// Close stops accepting entries and waits for pending ones to be written.
func (m *APILoggingMiddleware) Close() {
	close(m.logChan)
	<-m.done
}
