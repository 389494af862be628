package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/calendar"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
	CreateLeave(w http.ResponseWriter, r *http.Request)
	ListLeaves(w http.ResponseWriter, r *http.Request)
	SetLeaveStatus(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{calendarService: calendarService}
}

// CreateHoliday implements CalendarHandler
func (h *calendarHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.calendarService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", result)
}

// ListHolidays implements CalendarHandler
func (h *calendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	from, to, ok := rangeFromQuery(r)
	if !ok {
		response.BadRequest(w, "Provide month=YYYY-MM or from/to dates", nil)
		return
	}

	results, err := h.calendarService.ListHolidays(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteHoliday implements CalendarHandler
func (h *calendarHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.calendarService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

// CreateLeave implements CalendarHandler
func (h *calendarHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.calendarService.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave recorded successfully", result)
}

// ListLeaves implements CalendarHandler
func (h *calendarHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	personID := r.URL.Query().Get("person_id")
	if personID == "" {
		response.BadRequest(w, "person_id is required", nil)
		return
	}

	from, to, ok := rangeFromQuery(r)
	if !ok {
		response.BadRequest(w, "Provide month=YYYY-MM or from/to dates", nil)
		return
	}

	results, err := h.calendarService.ListLeaves(r.Context(), personID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// SetLeaveStatus implements CalendarHandler
func (h *calendarHandlerImpl) SetLeaveStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetLeaveStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.calendarService.SetLeaveStatus(r.Context(), id, calendar.LeaveStatus(req.Status)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave status updated successfully", nil)
}

// DeleteLeave implements CalendarHandler
func (h *calendarHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	if err := h.calendarService.DeleteLeave(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave deleted successfully", nil)
}

// rangeFromQuery resolves month=YYYY-MM or from/to date params to a date
// range.
func rangeFromQuery(r *http.Request) (time.Time, time.Time, bool) {
	if month, ok := validator.IsValidMonth(r.URL.Query().Get("month")); ok {
		return month, month.AddDate(0, 1, -1), true
	}
	from, okFrom := validator.IsValidDate(r.URL.Query().Get("from"))
	to, okTo := validator.IsValidDate(r.URL.Query().Get("to"))
	if okFrom && okTo {
		return from, to, true
	}
	return time.Time{}, time.Time{}, false
}
