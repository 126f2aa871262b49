package handler

import (
	"log/slog"
	"net/http"

	"github.com/redisboard/redisboard/internal/storage"
)

type healthResponse struct {
	Status string `json:"status"`
}

// Health reports whether the backing store answers a ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := storage.Healthcheck(h.store)(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "healthcheck failed", slog.Any("error", err))
		respondJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	respondJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
