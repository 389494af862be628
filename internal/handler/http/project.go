package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/project"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	BulkCostUpdate(w http.ResponseWriter, r *http.Request)
	ListCosts(w http.ResponseWriter, r *http.Request)
	ListProjectCosts(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{projectService: projectService}
}

// Create implements ProjectHandler
func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", result)
}

// Get implements ProjectHandler
func (h *projectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	result, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ProjectHandler
func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	results, err := h.projectService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements ProjectHandler
func (h *projectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.projectService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", result)
}

// Delete implements ProjectHandler
func (h *projectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}

// BulkCostUpdate implements ProjectHandler
func (h *projectHandlerImpl) BulkCostUpdate(w http.ResponseWriter, r *http.Request) {
	var req project.BulkCostUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BulkCostUpdate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.projectService.BulkCostUpdate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project costs updated successfully", results)
}

// ListCosts implements ProjectHandler
func (h *projectHandlerImpl) ListCosts(w http.ResponseWriter, r *http.Request) {
	month, ok := validator.IsValidMonth(r.URL.Query().Get("month"))
	if !ok {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	results, err := h.projectService.ListCostsByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListProjectCosts implements ProjectHandler
func (h *projectHandlerImpl) ListProjectCosts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	from, okFrom := validator.IsValidMonth(r.URL.Query().Get("from"))
	to, okTo := validator.IsValidMonth(r.URL.Query().Get("to"))
	if !okFrom || !okTo {
		// Default to the trailing twelve months.
		now := time.Now().UTC()
		to = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		from = to.AddDate(0, -11, 0)
	}

	results, err := h.projectService.ListCostsByProject(r.Context(), id, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
