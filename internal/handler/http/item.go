package http

import (
	"net/http"

	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/utils"
	"github.com/MKhiriev/inventory-keeper/models"
)

// addItem validates the submitted values against the inventory fields and
// stores them. Validation failures list the offending fields.
func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
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

	var request models.AddItemRequest
	if err = decodeBody(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.AddItem(r.Context(), caller, inventoryID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("inventory_id", inventoryID).Int64("item_id", item.ItemID).Msg("item added")
	utils.WriteJSON(w, models.ItemResponse{Item: item}, http.StatusCreated)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	inventoryID, err := inventoryIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items, err := h.services.ItemService.ListItems(r.Context(), inventoryID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, models.ItemsResponse{InventoryID: inventoryID, Items: items}, http.StatusOK)
}

func (h *Handler) deleteItems(w http.ResponseWriter, r *http.Request) {
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

	var request models.DeleteItemsRequest
	if err = decodeBody(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	deleted, err := h.services.ItemService.DeleteItems(r.Context(), caller, inventoryID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemsDeletedResponse{Message: "items deleted", DeletedCount: deleted}, http.StatusOK)
}

func (h *Handler) getFields(w http.ResponseWriter, r *http.Request) {
	inventoryID, err := inventoryIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	fields, err := h.services.SchemaService.GetFields(r.Context(), inventoryID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if fields == nil {
		fields = []models.FieldDefinition{}
	}

	utils.WriteJSON(w, models.FieldsResponse{Fields: fields}, http.StatusOK)
}

func (h *Handler) defineFields(w http.ResponseWriter, r *http.Request) {
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

	var request models.DefineFieldsRequest
	if err = decodeBody(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	fields, err := h.services.SchemaService.DefineFields(r.Context(), caller, inventoryID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FieldsResponse{Fields: fields}, http.StatusCreated)
}
