package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dataprecision/margindesk-sub001/internal/domain/allocation"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AllocationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type allocationHandlerImpl struct {
	allocationService allocation.AllocationService
}

func NewAllocationHandler(allocationService allocation.AllocationService) AllocationHandler {
	return &allocationHandlerImpl{allocationService: allocationService}
}

// Create implements AllocationHandler
func (h *allocationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req allocation.CreateAllocationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAllocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.allocationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Allocation created successfully", result)
}

// Get implements AllocationHandler
func (h *allocationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Allocation ID is required", nil)
		return
	}

	result, err := h.allocationService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AllocationHandler
func (h *allocationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	month, ok := validator.IsValidMonth(r.URL.Query().Get("month"))
	if !ok {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	if personID := r.URL.Query().Get("person_id"); personID != "" {
		results, err := h.allocationService.ListByPersonMonth(r.Context(), personID, month)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, results)
		return
	}

	results, err := h.allocationService.ListByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements AllocationHandler
func (h *allocationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Allocation ID is required", nil)
		return
	}

	var req allocation.UpdateAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAllocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.allocationService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Allocation updated successfully", result)
}

// Delete implements AllocationHandler
func (h *allocationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Allocation ID is required", nil)
		return
	}

	if err := h.allocationService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Allocation deleted successfully", nil)
}
