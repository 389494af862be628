package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PersonHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Offboard(w http.ResponseWriter, r *http.Request)
	SetSalary(w http.ResponseWriter, r *http.Request)
	ListSalaries(w http.ResponseWriter, r *http.Request)
}

type personHandlerImpl struct {
	personService person.PersonService
}

func NewPersonHandler(personService person.PersonService) PersonHandler {
	return &personHandlerImpl{personService: personService}
}

// Create implements PersonHandler
func (h *personHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req person.CreatePersonRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePerson decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.personService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Person created successfully", result)
}

// Get implements PersonHandler
func (h *personHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Person ID is required", nil)
		return
	}

	result, err := h.personService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PersonHandler
func (h *personHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter person.PersonFilter

	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}
	if billable := r.URL.Query().Get("billable"); billable != "" {
		b := billable == "true"
		filter.Billable = &b
	}
	filter.ActiveOnly = r.URL.Query().Get("active_only") == "true"
	filter.Search = r.URL.Query().Get("search")

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

	results, total, err := h.personService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, response.NewMeta(filter.Page, filter.Limit, total))
}

// Update implements PersonHandler
func (h *personHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Person ID is required", nil)
		return
	}

	var req person.UpdatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePerson decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.personService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Person updated successfully", result)
}

// Offboard implements PersonHandler
func (h *personHandlerImpl) Offboard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Person ID is required", nil)
		return
	}

	var req person.OffboardPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("OffboardPerson decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.personService.Offboard(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Person offboarded successfully", nil)
}

// SetSalary implements PersonHandler
func (h *personHandlerImpl) SetSalary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Person ID is required", nil)
		return
	}

	month, ok := validator.IsValidMonth(chi.URLParam(r, "month"))
	if !ok {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	var req person.SetSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.personService.SetSalary(r.Context(), id, month, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary recorded successfully", result)
}

// ListSalaries implements PersonHandler
func (h *personHandlerImpl) ListSalaries(w http.ResponseWriter, r *http.Request) {
	month, ok := validator.IsValidMonth(r.URL.Query().Get("month"))
	if !ok {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	results, err := h.personService.ListSalariesByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
