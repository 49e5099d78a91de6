package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/erazemk/shramba/internal/store"
)

// OwnersHandler handles owner CRUD endpoints.
type OwnersHandler struct {
	Store *store.Store
}

type ownerRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/owners.
func (h *OwnersHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.ListOwners())
}

// Create handles POST /api/owners.
func (h *OwnersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	owner, err := h.Store.CreateOwner(req.Name)
	if err != nil {
		storeError(w, err, "failed to create owner")
		return
	}

	slog.Info("owner created", "actor", actorName(r.Context()), "owner", owner.Name, "id", owner.ID)
	jsonResponse(w, http.StatusCreated, owner)
}

// Get handles GET /api/owners/{id}.
func (h *OwnersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	owner := h.Store.GetOwner(id)
	if owner == nil {
		jsonError(w, http.StatusNotFound, "owner not found")
		return
	}
	jsonResponse(w, http.StatusOK, owner)
}

// Update handles PUT /api/owners/{id}.
func (h *OwnersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	var req ownerRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Store.UpdateOwnerName(id, req.Name); err != nil {
		storeError(w, err, "failed to update owner")
		return
	}

	slog.Info("owner updated", "actor", actorName(r.Context()), "owner", req.Name, "id", id)
	jsonResponse(w, http.StatusOK, h.Store.GetOwner(id))
}

// Delete handles DELETE /api/owners/{id}. Items the owner held become
// unassigned.
func (h *OwnersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	ownerName := fmt.Sprintf("id:%d", id)
	released := 0
	if owner := h.Store.GetOwner(id); owner != nil {
		ownerName = owner.Name
		released = len(owner.ItemIDs)
	}

	if err := h.Store.DeleteOwner(id); err != nil {
		storeError(w, err, "failed to delete owner")
		return
	}

	slog.Info("owner deleted", "actor", actorName(r.Context()), "owner", ownerName, "released_items", released)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "owner deleted"})
}

// Items handles GET /api/owners/{id}/items.
func (h *OwnersHandler) Items(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	if h.Store.GetOwner(id) == nil {
		jsonError(w, http.StatusNotFound, "owner not found")
		return
	}
	jsonResponse(w, http.StatusOK, h.Store.AssignedItems(id))
}
