package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/shramba/internal/metrics"
	"github.com/erazemk/shramba/internal/model"
	"github.com/erazemk/shramba/internal/store"
)

// AssignmentsHandler handles assigning items to owners and taking them back.
type AssignmentsHandler struct {
	Store   *store.Store
	Metrics *metrics.Metrics
}

type assignmentRequest struct {
	ItemID  int64 `json:"item_id"`
	OwnerID int64 `json:"owner_id"`
}

type assignmentResponse struct {
	Outcome string      `json:"outcome"`
	Item    *model.Item `json:"item"`
}

func (req assignmentRequest) valid() bool {
	return req.ItemID > 0 && req.OwnerID > 0
}

// Create handles POST /api/assignments.
func (h *AssignmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.valid() {
		jsonError(w, http.StatusBadRequest, "item_id and owner_id are required and must be positive")
		return
	}

	result := h.Store.AssignItem(req.ItemID, req.OwnerID)
	h.Metrics.ObserveAssign(result)

	switch result {
	case store.AssignNotFound:
		jsonError(w, http.StatusNotFound, "item or owner not found")
		return
	case store.AssignBlocked:
		reason := h.Store.AssignmentBlockReason(req.ItemID)
		if reason == "" {
			reason = store.BlockReasonLowCondition
		}
		slog.Warn("assignment blocked", "actor", actorName(r.Context()), "item_id", req.ItemID, "owner_id", req.OwnerID, "reason", reason)
		jsonError(w, http.StatusConflict, reason)
		return
	}

	item := h.Store.GetItem(req.ItemID)
	if result != store.AssignUnchanged && item != nil {
		slog.Info("item assigned", "actor", actorName(r.Context()),
			"item", item.Name, "owner", item.OwnerName,
			"outcome", result.String(), "condition", item.Condition)
	}
	jsonResponse(w, http.StatusOK, assignmentResponse{Outcome: result.String(), Item: item})
}

// Delete handles DELETE /api/assignments.
func (h *AssignmentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.valid() {
		jsonError(w, http.StatusBadRequest, "item_id and owner_id are required and must be positive")
		return
	}

	removed := h.Store.Unassign(req.OwnerID, req.ItemID)
	h.Metrics.ObserveUnassign(removed)
	if !removed {
		jsonError(w, http.StatusNotFound, "owner does not hold item")
		return
	}

	slog.Info("item unassigned", "actor", actorName(r.Context()), "item_id", req.ItemID, "owner_id", req.OwnerID)
	jsonResponse(w, http.StatusOK, assignmentResponse{Outcome: metrics.UnassignRemoved, Item: h.Store.GetItem(req.ItemID)})
}
