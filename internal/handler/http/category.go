package http

import (
	"net/http"

	"github.com/MKhiriev/inventory-keeper/internal/utils"
	"github.com/MKhiriev/inventory-keeper/models"
)

type createCategoryRequest struct {
	Label string `json:"label"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	utils.WriteJSON(w, models.CategoriesResponse{Categories: categories}, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var request createCategoryRequest
	if err := decodeBody(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.CreateCategory(r.Context(), models.Category{Label: request.Label})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CategoryResponse{Category: category}, http.StatusCreated)
}
