package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/tutor-catalog/backend/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the status class and a client-safe message.
type ErrorDetail struct {
	Code    domain.StatusClass `json:"code"`
	Message string             `json:"message"`
}

// httpStatus maps a status class to its HTTP code.
func httpStatus(c domain.StatusClass) int {
	switch c {
	case domain.StatusNotFound:
		return http.StatusNotFound
	case domain.StatusBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an ErrorResponse and logs it.
// Storage and transport failures are logged at error level with their cause;
// the client only ever sees the generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	class := kind.Status()

	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"kind", kind.String(),
		"error", err,
	}
	if class == domain.StatusInternal {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			attrs = append(attrs, "pg_code", pgErr.Code)
		}
		s.log.ErrorContext(r.Context(), "request failed", attrs...)
	} else {
		s.log.DebugContext(r.Context(), "request rejected", attrs...)
	}

	s.writeJSON(w, r, httpStatus(class), ErrorResponse{
		Error: ErrorDetail{Code: class, Message: domain.PublicMessage(err)},
	})
}

// writeJSON encodes v as the response body with the given status.
// The header is already sent when encoding fails, so the failure is only logged.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.ErrorContext(r.Context(), "write response",
			slog.String("path", r.URL.Path),
			slog.Any("error", domain.TransportFailure(err)),
		)
	}
}
