package handler

import (
	"log/slog"
	"net/http"
)

// Logout revokes the current session and expires the cookie. It
// always answers success: a store failure must not keep the client
// holding a cookie, and logging out twice is a no-op.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token, err := h.cookies.Get(r, h.cookieName)
	if err != nil {
		respondJSON(w, http.StatusOK, successResponse{Success: true})
		return
	}

	if err := h.sessions.Revoke(r.Context(), token); err != nil {
		// Logged and ignored: the cookie is cleared regardless.
		h.logger.ErrorContext(r.Context(), "session revoke failed", slog.Any("error", err))
	}

	h.cookies.Delete(w, h.cookieName)
	respondJSON(w, http.StatusOK, successResponse{Success: true})
}
