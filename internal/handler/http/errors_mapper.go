package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/inventory-keeper/internal/access"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/service"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/internal/utils"
	"github.com/MKhiriev/inventory-keeper/internal/validators"
	"github.com/MKhiriev/inventory-keeper/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusMap is matched in order; the first target found in the error
// chain decides the status.
var errorStatusMap = []errorStatus{
	{service.ErrCRMFailure, http.StatusBadGateway},
	{service.ErrCRMNotConfigured, http.StatusBadRequest},

	{access.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{utils.ErrInvalidAuthHeader, http.StatusUnauthorized},

	{access.ErrBlocked, http.StatusForbidden},
	{access.ErrNotOwner, http.StatusForbidden},
	{access.ErrAdminOnly, http.StatusForbidden},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidPathID, http.StatusBadRequest},
	{validators.ErrMissingField, http.StatusBadRequest},
	{validators.ErrInvalidField, http.StatusBadRequest},
	{validators.ErrUnknownFields, http.StatusBadRequest},
	{validators.ErrTypeMismatch, http.StatusBadRequest},
	{validators.ErrEmptyFields, http.StatusBadRequest},
	{validators.ErrDuplicateFieldName, http.StatusBadRequest},
	{validators.ErrInvalidFieldType, http.StatusBadRequest},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest},
	{validators.ErrEmptyUpdates, http.StatusBadRequest},
	{validators.ErrEmptyIDs, http.StatusBadRequest},
	{store.ErrInventoryNameTaken, http.StatusBadRequest},

	{ErrRouteNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrCategoryNotFound, http.StatusNotFound},
	{store.ErrInventoryNotFound, http.StatusNotFound},
	{service.ErrNoInventoriesFound, http.StatusNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrCategoryAlreadyExists, http.StatusConflict},
	{store.ErrFieldAlreadyExists, http.StatusConflict},
	{store.ErrDuplicate, http.StatusConflict},
}

func statusFromError(err error) int {
	for _, es := range errorStatusMap {
		if errors.Is(err, es.target) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes the uniform error body. Internal error details
// are replaced by the status text when they are hidden.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	body, status := h.errorResponse(r, err)
	utils.WriteError(w, body.Error, body.Fields, status)
}

func (h *Handler) errorResponse(r *http.Request, err error) (models.ErrorResponse, int) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		if status == http.StatusInternalServerError && h.hideInternalErrors {
			message = http.StatusText(status)
		}
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	return models.ErrorResponse{Error: message, Fields: validators.FieldsOf(err)}, status
}
