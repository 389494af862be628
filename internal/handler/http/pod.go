package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/pod"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PodHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	MapProject(w http.ResponseWriter, r *http.Request)
	UnmapProject(w http.ResponseWriter, r *http.Request)
	ListProjects(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type podHandlerImpl struct {
	podService pod.PodService
}

func NewPodHandler(podService pod.PodService) PodHandler {
	return &podHandlerImpl{podService: podService}
}

type endDateRequest struct {
	EndDate string `json:"end_date"`
}

// Create implements PodHandler
func (h *podHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req pod.CreatePodRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePod decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.podService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pod created successfully", result)
}

// Get implements PodHandler
func (h *podHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Pod ID is required", nil)
		return
	}

	result, err := h.podService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PodHandler
func (h *podHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.podService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Delete implements PodHandler
func (h *podHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Pod ID is required", nil)
		return
	}

	if err := h.podService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pod deleted successfully", nil)
}

// AddMember implements PodHandler
func (h *podHandlerImpl) AddMember(w http.ResponseWriter, r *http.Request) {
	podID := chi.URLParam(r, "id")
	if podID == "" {
		response.BadRequest(w, "Pod ID is required", nil)
		return
	}

	var req pod.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddMember decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.podService.AddMember(r.Context(), podID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member added successfully", result)
}

// RemoveMember implements PodHandler
func (h *podHandlerImpl) RemoveMember(w http.ResponseWriter, r *http.Request) {
	membershipID := chi.URLParam(r, "membershipID")
	if membershipID == "" {
		response.BadRequest(w, "Membership ID is required", nil)
		return
	}

	endDate, ok := h.decodeEndDate(w, r)
	if !ok {
		return
	}

	if err := h.podService.RemoveMember(r.Context(), membershipID, endDate); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member removed successfully", nil)
}

// ListMembers implements PodHandler
func (h *podHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	podID := chi.URLParam(r, "id")
	if podID == "" {
		response.BadRequest(w, "Pod ID is required", nil)
		return
	}

	var activeIn *time.Time
	if month, ok := validator.IsValidMonth(r.URL.Query().Get("month")); ok {
		activeIn = &month
	}

	results, err := h.podService.ListMembers(r.Context(), podID, activeIn)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MapProject implements PodHandler
func (h *podHandlerImpl) MapProject(w http.ResponseWriter, r *http.Request) {
	podID := chi.URLParam(r, "id")
	if podID == "" {
		response.BadRequest(w, "Pod ID is required", nil)
		return
	}

	var req pod.MapProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MapProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.podService.MapProject(r.Context(), podID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project mapped successfully", result)
}

// UnmapProject implements PodHandler
func (h *podHandlerImpl) UnmapProject(w http.ResponseWriter, r *http.Request) {
	mappingID := chi.URLParam(r, "mappingID")
	if mappingID == "" {
		response.BadRequest(w, "Mapping ID is required", nil)
		return
	}

	endDate, ok := h.decodeEndDate(w, r)
	if !ok {
		return
	}

	if err := h.podService.UnmapProject(r.Context(), mappingID, endDate); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project unmapped successfully", nil)
}

// ListProjects implements PodHandler
func (h *podHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	podID := chi.URLParam(r, "id")
	if podID == "" {
		response.BadRequest(w, "Pod ID is required", nil)
		return
	}

	var activeIn *time.Time
	if month, ok := validator.IsValidMonth(r.URL.Query().Get("month")); ok {
		activeIn = &month
	}

	results, err := h.podService.ListProjects(r.Context(), podID, activeIn)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MonthlySummary implements PodHandler
func (h *podHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	podID := chi.URLParam(r, "id")
	if podID == "" {
		response.BadRequest(w, "Pod ID is required", nil)
		return
	}

	month, ok := validator.IsValidMonth(r.URL.Query().Get("month"))
	if !ok {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	result, err := h.podService.MonthlySummary(r.Context(), podID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *podHandlerImpl) decodeEndDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	var req endDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return time.Time{}, false
	}
	endDate, ok := validator.IsValidDate(req.EndDate)
	if !ok {
		response.BadRequest(w, "end_date must be YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return endDate, true
}
