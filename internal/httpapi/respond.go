package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/naija"
)

type dataResponse struct {
	Data []any `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps generator failures onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, naija.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, naija.ErrEmptyPool), errors.Is(err, naija.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", slog.Any("error", err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
