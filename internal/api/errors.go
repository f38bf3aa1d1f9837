package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mentorra/backend/internal/fault"
)

// errorBody is the JSON shape of every failure response.
type errorBody struct {
	Detail string `json:"detail"`
}

// statusFor maps the closed fault taxonomy to HTTP status codes. Anything
// unclassified is a plain internal error.
func statusFor(err error) int {
	switch fault.KindOf(err) {
	case fault.KindInput:
		return http.StatusBadRequest
	case fault.KindVendor:
		return http.StatusBadGateway
	case fault.KindMalformed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and sends it as a JSON error body. Every failure path
// goes through here, so the "always JSON, always a message" contract holds.
func writeError(w http.ResponseWriter, op string, err error) {
	slog.Error(op+" failed", "kind", fault.KindOf(err).String(), "error", err)
	writeJSON(w, statusFor(err), errorBody{Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
