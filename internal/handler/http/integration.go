package http

import (
	"log/slog"
	"net/http"

	"github.com/dataprecision/margindesk-sub001/internal/domain/integration"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type IntegrationHandler interface {
	Connect(w http.ResponseWriter, r *http.Request)
	Callback(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Disconnect(w http.ResponseWriter, r *http.Request)
	SyncBooks(w http.ResponseWriter, r *http.Request)
	SyncPeopleHub(w http.ResponseWriter, r *http.Request)
}

type integrationHandlerImpl struct {
	integrationService integration.Service
}

func NewIntegrationHandler(integrationService integration.Service) IntegrationHandler {
	return &integrationHandlerImpl{integrationService: integrationService}
}

// Connect implements IntegrationHandler
func (h *integrationHandlerImpl) Connect(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		response.BadRequest(w, "Integration name is required", nil)
		return
	}

	url, err := h.integrationService.ConnectURL(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// Callback implements IntegrationHandler
func (h *integrationHandlerImpl) Callback(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		response.BadRequest(w, "Integration name is required", nil)
		return
	}

	if errorValue := r.URL.Query().Get("error"); errorValue != "" {
		slog.Error("Integration callback returned error", "integration", name, "error", errorValue)
		response.BadRequest(w, "Authorization was denied", nil)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Authorization code is required", nil)
		return
	}

	if err := h.integrationService.HandleCallback(r.Context(), name, code); err != nil {
		slog.Error("Integration callback failed", "integration", name, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Integration connected", "integration", name)
	response.SuccessWithMessage(w, "Integration connected successfully", nil)
}

// Status implements IntegrationHandler
func (h *integrationHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		response.BadRequest(w, "Integration name is required", nil)
		return
	}

	result, err := h.integrationService.Status(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Disconnect implements IntegrationHandler
func (h *integrationHandlerImpl) Disconnect(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		response.BadRequest(w, "Integration name is required", nil)
		return
	}

	if err := h.integrationService.Disconnect(r.Context(), name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Integration disconnected successfully", nil)
}

// SyncBooks implements IntegrationHandler
func (h *integrationHandlerImpl) SyncBooks(w http.ResponseWriter, r *http.Request) {
	result, err := h.integrationService.SyncBooks(r.Context())
	if err != nil {
		slog.Error("Books sync failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Books sync finished", result)
}

// SyncPeopleHub implements IntegrationHandler
func (h *integrationHandlerImpl) SyncPeopleHub(w http.ResponseWriter, r *http.Request) {
	result, err := h.integrationService.SyncPeopleHub(r.Context())
	if err != nil {
		slog.Error("PeopleHub sync failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "PeopleHub sync finished", result)
}
