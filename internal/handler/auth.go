package handler

import (
	"net/http"

	"github.com/lacentralbaja/archivo/internal/api"
	"github.com/lacentralbaja/archivo/internal/middleware"
	"github.com/lacentralbaja/archivo/internal/utils"
)

// AdminLogin exchanges the shared admin key for a session cookie, so the
// moderation page does not have to hold the raw key past login. The response
// for a wrong key matches the gate's: a bare 401.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if !h.gate.CheckKey(req.Key) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := h.sessions.NewToken()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
