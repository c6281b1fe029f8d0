package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pr-poehali-dev/ai-promotion-design/pkg/logger"
)

// HandlerFunc is an http handler that reports failures by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler adapts fn to http.HandlerFunc, rendering returned errors with Write.
func Handler(log *slog.Logger, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			Write(log, w, r, err)
		}
	}
}

// Write renders err as a JSON error envelope. 5xx errors are logged.
func Write(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	code, body := ToHTTPError(err)

	if code >= http.StatusInternalServerError {
		log.Error("request error",
			slog.Int("status", code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(code)
		return
	}
	WriteJSON(w, code, body)
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
