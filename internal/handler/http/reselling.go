package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dataprecision/margindesk-sub001/internal/domain/reselling"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ResellingHandler interface {
	CreateInvoice(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	UpdateInvoice(w http.ResponseWriter, r *http.Request)
	DeleteInvoice(w http.ResponseWriter, r *http.Request)
	AddAllocation(w http.ResponseWriter, r *http.Request)
	UpdateAllocation(w http.ResponseWriter, r *http.Request)
	DeleteAllocation(w http.ResponseWriter, r *http.Request)
}

type resellingHandlerImpl struct {
	resellingService reselling.Service
}

func NewResellingHandler(resellingService reselling.Service) ResellingHandler {
	return &resellingHandlerImpl{resellingService: resellingService}
}

// CreateInvoice implements ResellingHandler
func (h *resellingHandlerImpl) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req reselling.CreateInvoiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateInvoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.resellingService.CreateInvoice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reselling invoice created successfully", result)
}

// GetInvoice implements ResellingHandler
func (h *resellingHandlerImpl) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := h.resellingService.GetInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListInvoices implements ResellingHandler
func (h *resellingHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	month, ok := validator.IsValidMonth(r.URL.Query().Get("month"))
	if !ok {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	results, err := h.resellingService.ListInvoicesByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateInvoice implements ResellingHandler
func (h *resellingHandlerImpl) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	var req reselling.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateInvoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.resellingService.UpdateInvoice(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reselling invoice updated successfully", result)
}

// DeleteInvoice implements ResellingHandler
func (h *resellingHandlerImpl) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	if err := h.resellingService.DeleteInvoice(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reselling invoice deleted successfully", nil)
}

// AddAllocation implements ResellingHandler
func (h *resellingHandlerImpl) AddAllocation(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	var req reselling.AddAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddAllocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ResellingInvoiceID = invoiceID

	result, err := h.resellingService.AddAllocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bill allocation added successfully", result)
}

// UpdateAllocation implements ResellingHandler
func (h *resellingHandlerImpl) UpdateAllocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "allocationID")
	if id == "" {
		response.BadRequest(w, "Allocation ID is required", nil)
		return
	}

	var req reselling.UpdateAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAllocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.resellingService.UpdateAllocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill allocation updated successfully", result)
}

// DeleteAllocation implements ResellingHandler
func (h *resellingHandlerImpl) DeleteAllocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "allocationID")
	if id == "" {
		response.BadRequest(w, "Allocation ID is required", nil)
		return
	}

	result, err := h.resellingService.DeleteAllocation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill allocation removed successfully", result)
}
