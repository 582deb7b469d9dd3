package api

import (
	"net/http"

	"github.com/crmrapid/portal/internal/handler"
	"github.com/crmrapid/portal/internal/service"
)

// CustomerHandler serves /api/customers.
type CustomerHandler struct {
	customers service.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// List handles GET /api/customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// Get handles GET /api/customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.GetCustomer(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// Create handles POST /api/customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params service.CreateCustomerParams
	if err := decodeJSON(r, "CustomerHandler.Create", &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	customer, err := h.customers.CreateCustomer(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

// Update handles PUT /api/customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var params service.UpdateCustomerParams
	if err := decodeJSON(r, "CustomerHandler.Update", &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	customer, err := h.customers.UpdateCustomer(r.Context(), r.PathValue("id"), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customers.DeleteCustomer(r.Context(), r.PathValue("id")); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
