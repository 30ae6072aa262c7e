package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/pkg/ctxutil"
)

// probePaths are polled by orchestrators; their access lines go to debug.
var probePaths = map[string]struct{}{
	"/live":   {},
	"/ready":  {},
	"/health": {},
}

type requestLogKey struct{}

// requestLog collects values that inner middleware learn after Logger has
// already passed the request on.
type requestLog struct {
	userID uuid.UUID
}

// noteUser records the authenticated user for the access line.
func noteUser(ctx context.Context, id uuid.UUID) {
	if rl, ok := ctx.Value(requestLogKey{}).(*requestLog); ok {
		rl.userID = id
	}
}

// Logger writes one access line per request: method, path, status, bytes,
// duration, request_id and, once authenticated, user_id. 5xx responses log
// at error level.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rl := &requestLog{}
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), requestLogKey{}, rl)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if rl.userID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", rl.userID.String()))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case isProbe(r.URL.Path):
				level = slog.LevelDebug
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

func isProbe(path string) bool {
	_, ok := probePaths[path]
	return ok
}

// statusWriter captures the status code and body size. Unwrap lets
// http.ResponseController reach the underlying writer for flushing large
// file downloads.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
