package http

import (
	"net/http"
	"strconv"

	"github.com/dataprecision/margindesk-sub001/internal/domain/utilization"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type UtilizationHandler interface {
	Recalculate(w http.ResponseWriter, r *http.Request)
	RecalculateMonth(w http.ResponseWriter, r *http.Request)
	GetByPersonMonth(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	ListByPerson(w http.ResponseWriter, r *http.Request)
}

type utilizationHandlerImpl struct {
	utilizationService utilization.Service
}

func NewUtilizationHandler(utilizationService utilization.Service) UtilizationHandler {
	return &utilizationHandlerImpl{utilizationService: utilizationService}
}

// Recalculate implements UtilizationHandler
func (h *utilizationHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")
	if personID == "" {
		response.BadRequest(w, "Person ID is required", nil)
		return
	}

	month, ok := validator.IsValidMonth(r.URL.Query().Get("month"))
	if !ok {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	result, err := h.utilizationService.Recalculate(r.Context(), personID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Utilization recalculated successfully", result)
}

// RecalculateMonth implements UtilizationHandler. Passing months=N instead
// of a month reruns the calculation for the last N months.
func (h *utilizationHandlerImpl) RecalculateMonth(w http.ResponseWriter, r *http.Request) {
	if monthsParam := r.URL.Query().Get("months"); monthsParam != "" {
		months, err := strconv.Atoi(monthsParam)
		if err != nil || months <= 0 {
			response.BadRequest(w, "Months must be a positive number", nil)
			return
		}

		results, err := h.utilizationService.RecalculateLastN(r.Context(), months)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.SuccessWithMessage(w, "Utilization batch recalculation finished", results)
		return
	}

	month, ok := validator.IsValidMonth(r.URL.Query().Get("month"))
	if !ok {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	result, err := h.utilizationService.RecalculateMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Utilization batch recalculation finished", result)
}

// GetByPersonMonth implements UtilizationHandler
func (h *utilizationHandlerImpl) GetByPersonMonth(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")
	if personID == "" {
		response.BadRequest(w, "Person ID is required", nil)
		return
	}

	month, ok := validator.IsValidMonth(r.URL.Query().Get("month"))
	if !ok {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	result, err := h.utilizationService.GetByPersonMonth(r.Context(), personID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByMonth implements UtilizationHandler
func (h *utilizationHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month, ok := validator.IsValidMonth(r.URL.Query().Get("month"))
	if !ok {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	results, err := h.utilizationService.ListByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListByPerson implements UtilizationHandler
func (h *utilizationHandlerImpl) ListByPerson(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")
	if personID == "" {
		response.BadRequest(w, "Person ID is required", nil)
		return
	}

	months := 0
	if m := r.URL.Query().Get("months"); m != "" {
		if parsed, err := strconv.Atoi(m); err == nil && parsed > 0 {
			months = parsed
		}
	}

	results, err := h.utilizationService.ListByPerson(r.Context(), personID, months)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
