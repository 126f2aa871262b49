package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/redisboard/redisboard/internal/cookie"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies the admin credential pair and, on success, issues a
// session and sets the session cookie. Credential failures are
// deliberately uniform: the response never says which field was
// wrong.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Username == "" || req.Password == "" {
		h.respondError(w, http.StatusBadRequest, "username and password are required", nil)
		return
	}

	if err := h.creds.Verify(req.Username, req.Password); err != nil {
		h.respondError(w, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}

	token, err := h.sessions.Issue(r.Context(), req.Username)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "session issue failed", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "server error", err)
		return
	}

	h.cookies.Set(w, h.cookieName, token,
		cookie.WithMaxAge(int(h.sessions.TTL().Seconds())))

	respondJSON(w, http.StatusOK, successResponse{Success: true})
}
