package api

import (
	"net/http"

	"github.com/erazemk/shramba/internal/metrics"
	"github.com/erazemk/shramba/internal/model"
	"github.com/erazemk/shramba/internal/session"
	"github.com/erazemk/shramba/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(st *store.Store, sess *session.Session, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	ownersHandler := &OwnersHandler{Store: st}
	itemsHandler := &ItemsHandler{Store: st, Metrics: m}
	assignmentsHandler := &AssignmentsHandler{Store: st, Metrics: m}
	historyHandler := &HistoryHandler{Store: st}
	sessionHandler := &SessionHandler{Session: sess}

	actorMW := ActorMiddleware(sess)
	requireAdmin := RequireRole(model.RoleAdmin)

	read := func(h http.HandlerFunc) http.Handler { return actorMW(h) }
	write := func(h http.HandlerFunc) http.Handler { return actorMW(requireAdmin(h)) }

	// Session: open, so a signed-out process can sign back in.
	mux.HandleFunc("GET /api/session", sessionHandler.Get)
	mux.HandleFunc("PUT /api/session", sessionHandler.Set)
	mux.HandleFunc("DELETE /api/session", sessionHandler.Delete)

	// Owners: read (all roles), write (admin).
	mux.Handle("GET /api/owners", read(ownersHandler.List))
	mux.Handle("POST /api/owners", write(ownersHandler.Create))
	mux.Handle("GET /api/owners/{id}", read(ownersHandler.Get))
	mux.Handle("PUT /api/owners/{id}", write(ownersHandler.Update))
	mux.Handle("DELETE /api/owners/{id}", write(ownersHandler.Delete))
	mux.Handle("GET /api/owners/{id}/items", read(ownersHandler.Items))

	// Items: read (all roles), write (admin).
	mux.Handle("GET /api/items", read(itemsHandler.List))
	mux.Handle("POST /api/items", write(itemsHandler.Create))
	mux.Handle("GET /api/items/{id}", read(itemsHandler.Get))
	mux.Handle("PUT /api/items/{id}", write(itemsHandler.Update))
	mux.Handle("DELETE /api/items/{id}", write(itemsHandler.Delete))
	mux.Handle("POST /api/items/{id}/repair", write(itemsHandler.Repair))
	mux.Handle("POST /api/items/{id}/wear", write(itemsHandler.Wear))
	mux.Handle("GET /api/items/{id}/history", read(itemsHandler.History))

	// Assignments (admin).
	mux.Handle("POST /api/assignments", write(assignmentsHandler.Create))
	mux.Handle("DELETE /api/assignments", write(assignmentsHandler.Delete))

	mux.Handle("GET /api/history", read(historyHandler.List))
	mux.Handle("GET /metrics", m.Handler())

	return RequestIDMiddleware(LoggingMiddleware(mux))
}
