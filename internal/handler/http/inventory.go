package http

import (
	"net/http"

	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/utils"
	"github.com/MKhiriev/inventory-keeper/models"
)

func (h *Handler) listInventories(w http.ResponseWriter, r *http.Request) {
	inventories, err := h.services.InventoryService.ListInventories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeInventories(w, inventories)
}

func (h *Handler) listUserInventories(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	inventories, err := h.services.InventoryService.ListUserInventories(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeInventories(w, inventories)
}

func writeInventories(w http.ResponseWriter, inventories []models.Inventory) {
	if inventories == nil {
		inventories = []models.Inventory{}
	}
	utils.WriteJSON(w, models.InventoriesResponse{
		Total:       len(inventories),
		Inventories: inventories,
	}, http.StatusOK)
}

func (h *Handler) createInventory(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var request models.CreateInventoryRequest
	if err = decodeBody(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	inventory, err := h.services.InventoryService.CreateInventory(r.Context(), caller, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Int64("inventory_id", inventory.InventoryID).
		Str("owner", inventory.UserID).
		Msg("inventory created")

	fields := inventory.Fields
	if fields == nil {
		fields = []models.FieldDefinition{}
	}
	utils.WriteJSON(w, models.InventoryResponse{Inventory: inventory, Fields: fields}, http.StatusCreated)
}

func (h *Handler) deleteInventory(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	inventoryID, err := inventoryIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var request models.DeleteInventoryRequest
	if err = decodeOptionalBody(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.InventoryService.DeleteInventory(r.Context(), caller, inventoryID, request); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("inventory_id", inventoryID).Str("by", caller.UserID).Msg("inventory deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: "inventory deleted"}, http.StatusOK)
}
