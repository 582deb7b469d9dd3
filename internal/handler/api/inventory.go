package api

import (
	"net/http"
	"strings"

	"github.com/crmrapid/portal/internal/handler"
	"github.com/crmrapid/portal/internal/service"
)

// InventoryHandler serves /api/inventory and /api/inventory/categories.
type InventoryHandler struct {
	inventory service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventory service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// List handles GET /api/inventory
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventory.ListItems(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/inventory/{id}
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.inventory.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /api/inventory
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params service.InventoryItemParams
	if err := decodeJSON(r, "InventoryHandler.Create", &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	item, err := h.inventory.CreateItem(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/inventory/{id}
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var params service.InventoryItemParams
	if err := decodeJSON(r, "InventoryHandler.Update", &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	item, err := h.inventory.UpdateItem(r.Context(), r.PathValue("id"), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/{id}
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.DeleteItem(r.Context(), r.PathValue("id")); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /api/inventory/categories
func (h *InventoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.inventory.ListCategories(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/inventory/categories
func (h *InventoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var params struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, "InventoryHandler.CreateCategory", &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	category, err := h.inventory.CreateCategory(r.Context(), strings.TrimSpace(params.Name))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}
