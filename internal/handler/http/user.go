package http

import (
	"net/http"

	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/utils"
	"github.com/MKhiriev/inventory-keeper/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err = decodeBody(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}
	update.UserID = userID

	user, err := h.services.UserService.UpdateUser(r.Context(), caller, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", userID).Str("by", caller.UserID).Msg("user updated")
	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

func (h *Handler) updateUsers(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var request models.BulkUserUpdateRequest
	if err = decodeBody(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.UserService.UpdateUsers(r.Context(), caller, request); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int("count", len(request.Users)).Str("by", caller.UserID).Msg("users updated")
	utils.WriteJSON(w, models.MessageResponse{Message: "users updated"}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), caller, userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", userID).Str("by", caller.UserID).Msg("user deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: "user deleted"}, http.StatusOK)
}
