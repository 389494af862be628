package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/finance"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type FinanceHandler interface {
	CreateBill(w http.ResponseWriter, r *http.Request)
	GetBill(w http.ResponseWriter, r *http.Request)
	ListBills(w http.ResponseWriter, r *http.Request)
	UpdateBill(w http.ResponseWriter, r *http.Request)
	DeleteBill(w http.ResponseWriter, r *http.Request)
	CreateExpense(w http.ResponseWriter, r *http.Request)
	ListExpenses(w http.ResponseWriter, r *http.Request)
	UpdateExpense(w http.ResponseWriter, r *http.Request)
	DeleteExpense(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &financeHandlerImpl{financeService: financeService}
}

// CreateBill implements FinanceHandler
func (h *financeHandlerImpl) CreateBill(w http.ResponseWriter, r *http.Request) {
	var req finance.CreateBillRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateBill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.CreateBill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bill created successfully", result)
}

// GetBill implements FinanceHandler
func (h *financeHandlerImpl) GetBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bill ID is required", nil)
		return
	}

	result, err := h.financeService.GetBill(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListBills implements FinanceHandler
func (h *financeHandlerImpl) ListBills(w http.ResponseWriter, r *http.Request) {
	var filter finance.BillFilter

	if vendor := r.URL.Query().Get("vendor"); vendor != "" {
		filter.VendorName = &vendor
	}
	if from, ok := validator.IsValidDate(r.URL.Query().Get("from")); ok {
		filter.From = &from
	}
	if to, ok := validator.IsValidDate(r.URL.Query().Get("to")); ok {
		filter.To = &to
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			filter.Page = parsed
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			filter.Limit = parsed
		}
	}

	results, total, err := h.financeService.ListBills(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, response.NewMeta(filter.Page, filter.Limit, total))
}

// UpdateBill implements FinanceHandler
func (h *financeHandlerImpl) UpdateBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bill ID is required", nil)
		return
	}

	var req finance.UpdateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateBill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.financeService.UpdateBill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill updated successfully", result)
}

// DeleteBill implements FinanceHandler
func (h *financeHandlerImpl) DeleteBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bill ID is required", nil)
		return
	}

	if err := h.financeService.DeleteBill(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill deleted successfully", nil)
}

// CreateExpense implements FinanceHandler
func (h *financeHandlerImpl) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req finance.CreateExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateExpense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.CreateExpense(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense created successfully", result)
}

// ListExpenses implements FinanceHandler
func (h *financeHandlerImpl) ListExpenses(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time

	if month, ok := validator.IsValidMonth(r.URL.Query().Get("month")); ok {
		from = month
		to = month.AddDate(0, 1, -1)
	} else {
		okFrom, okTo := false, false
		from, okFrom = validator.IsValidDate(r.URL.Query().Get("from"))
		to, okTo = validator.IsValidDate(r.URL.Query().Get("to"))
		if !okFrom || !okTo {
			response.BadRequest(w, "Provide month=YYYY-MM or from/to dates", nil)
			return
		}
	}

	results, err := h.financeService.ListExpenses(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateExpense implements FinanceHandler
func (h *financeHandlerImpl) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Expense ID is required", nil)
		return
	}

	var req finance.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateExpense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.financeService.UpdateExpense(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense updated successfully", result)
}

// DeleteExpense implements FinanceHandler
func (h *financeHandlerImpl) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Expense ID is required", nil)
		return
	}

	if err := h.financeService.DeleteExpense(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense deleted successfully", nil)
}
