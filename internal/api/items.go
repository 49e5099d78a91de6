package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/shramba/internal/metrics"
	"github.com/erazemk/shramba/internal/model"
	"github.com/erazemk/shramba/internal/store"
)

// ItemsHandler handles item CRUD and condition endpoints.
type ItemsHandler struct {
	Store   *store.Store
	Metrics *metrics.Metrics
}

type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type amountRequest struct {
	Amount int `json:"amount"`
}

// itemResponse adds the current assignment block reason to an item.
type itemResponse struct {
	*model.Item
	BlockReason string `json:"block_reason,omitempty"`
}

// List handles GET /api/items. With ?unassigned=true only items without an
// owner are returned.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	unassigned := false
	if v := r.URL.Query().Get("unassigned"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid unassigned filter")
			return
		}
		unassigned = b
	}

	if unassigned {
		jsonResponse(w, http.StatusOK, h.Store.UnassignedItems())
		return
	}
	jsonResponse(w, http.StatusOK, h.Store.ListItems())
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Store.CreateItem(req.Name, req.Description)
	if err != nil {
		storeError(w, err, "failed to create item")
		return
	}

	slog.Info("item created", "actor", actorName(r.Context()), "item", item.Name, "id", item.ID)
	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item := h.Store.GetItem(id)
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, itemResponse{Item: item, BlockReason: h.Store.AssignmentBlockReason(id)})
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Store.UpdateItem(id, req.Name, req.Description); err != nil {
		storeError(w, err, "failed to update item")
		return
	}

	slog.Info("item updated", "actor", actorName(r.Context()), "item", req.Name, "id", id)
	jsonResponse(w, http.StatusOK, h.Store.GetItem(id))
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	itemName := fmt.Sprintf("id:%d", id)
	if item := h.Store.GetItem(id); item != nil {
		itemName = item.Name
	}

	if err := h.Store.DeleteItem(id); err != nil {
		storeError(w, err, "failed to delete item")
		return
	}

	slog.Info("item deleted", "actor", actorName(r.Context()), "item", itemName)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// Repair handles POST /api/items/{id}/repair.
func (h *ItemsHandler) Repair(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := store.ValidateRepairAmount(req.Amount); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	condition, err := h.Store.Repair(id, req.Amount)
	if err != nil {
		storeError(w, err, "failed to repair item")
		return
	}
	h.Metrics.ObserveRepair()

	slog.Info("item repaired", "actor", actorName(r.Context()), "id", id, "amount", req.Amount, "condition", condition)
	jsonResponse(w, http.StatusOK, itemResponse{Item: h.Store.GetItem(id), BlockReason: h.Store.AssignmentBlockReason(id)})
}

// Wear handles POST /api/items/{id}/wear.
func (h *ItemsHandler) Wear(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	condition, err := h.Store.ApplyWear(id, req.Amount)
	if err != nil {
		storeError(w, err, "failed to wear item")
		return
	}

	slog.Info("item worn", "actor", actorName(r.Context()), "id", id, "amount", req.Amount, "condition", condition)
	jsonResponse(w, http.StatusOK, itemResponse{Item: h.Store.GetItem(id), BlockReason: h.Store.AssignmentBlockReason(id)})
}

// History handles GET /api/items/{id}/history. History outlives the item,
// so a deleted item with records still answers.
func (h *ItemsHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	records := h.Store.HistoryForItem(id)
	if records == nil {
		if h.Store.GetItem(id) == nil {
			jsonError(w, http.StatusNotFound, "item not found")
			return
		}
		records = []model.Record{}
	}
	jsonResponse(w, http.StatusOK, records)
}
