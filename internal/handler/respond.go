package handler

import (
	"encoding/json"
	"net/http"

	"github.com/redisboard/redisboard/internal/environment"
)

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string, err error) {
	resp := errorResponse{Message: message}
	// Internals stay out of responses in production.
	if h.verboseErrors() && err != nil {
		resp.Detail = err.Error()
	}
	respondJSON(w, status, resp)
}

func (h *Handler) verboseErrors() bool {
	return !environment.IsProduction(h.env)
}
