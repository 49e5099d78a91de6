package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/shramba/internal/model"
	"github.com/erazemk/shramba/internal/session"
)

// SessionHandler exposes and switches the current actor. There is no
// password check; the process trusts whoever can reach it. Any caller,
// including a user actor, may sign in as admin through PUT, so role gating
// separates read-only and editing sessions rather than guarding the API
// against its own clients.
type SessionHandler struct {
	Session *session.Session
}

type sessionResponse struct {
	Actor *model.Actor `json:"actor"`
	Admin bool         `json:"admin"`
}

func (h *SessionHandler) current() sessionResponse {
	return sessionResponse{Actor: h.Session.Current(), Admin: h.Session.Can(model.RoleAdmin)}
}

// Get handles GET /api/session.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.current())
}

// Set handles PUT /api/session.
func (h *SessionHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req model.Actor
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Session.Set(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("actor signed in", "actor", req.Name, "role", req.Role)
	jsonResponse(w, http.StatusOK, h.current())
}

// Delete handles DELETE /api/session.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if a := h.Session.Current(); a != nil {
		slog.Info("actor signed out", "actor", a.Name)
	}
	h.Session.Clear()
	jsonResponse(w, http.StatusOK, h.current())
}
