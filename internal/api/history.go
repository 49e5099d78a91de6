package api

import (
	"net/http"

	"github.com/erazemk/shramba/internal/store"
)

// HistoryHandler serves the assignment history log.
type HistoryHandler struct {
	Store *store.Store
}

// List handles GET /api/history.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.ListHistory())
}
