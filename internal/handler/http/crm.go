package http

import (
	"net/http"

	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/utils"
	"github.com/MKhiriev/inventory-keeper/models"
)

func (h *Handler) saveCRMCredential(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var credential models.CRMCredential
	if err = decodeBody(r, &credential); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.CRMService.SaveCredential(r.Context(), caller, credential); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "crm credential saved"}, http.StatusOK)
}

func (h *Handler) crmHealth(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	health, err := h.services.CRMService.Health(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, health, http.StatusOK)
}

func (h *Handler) createCRMContact(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var contact models.CRMContact
	if err = decodeBody(r, &contact); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.CRMService.CreateContact(r.Context(), caller, contact)
	if err != nil {
		body, status := h.errorResponse(r, err)
		body.AccountID = result.AccountID
		utils.WriteJSON(w, body, status)
		return
	}

	logger.FromRequest(r).Info().
		Str("account_id", result.AccountID).
		Str("contact_id", result.ContactID).
		Msg("crm account and contact created")

	utils.WriteJSON(w, models.CRMContactResponse{OK: true, CRMResult: result}, http.StatusCreated)
}
