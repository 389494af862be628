package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dataprecision/margindesk-sub001/internal/domain/client"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type clientHandlerImpl struct {
	clientService client.ClientService
}

func NewClientHandler(clientService client.ClientService) ClientHandler {
	return &clientHandlerImpl{clientService: clientService}
}

// Create implements ClientHandler
func (h *clientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.clientService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created successfully", result)
}

// Get implements ClientHandler
func (h *clientHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Client ID is required", nil)
		return
	}

	result, err := h.clientService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ClientHandler
func (h *clientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	results, err := h.clientService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements ClientHandler
func (h *clientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Client ID is required", nil)
		return
	}

	var req client.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.clientService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client updated successfully", result)
}

// Delete implements ClientHandler
func (h *clientHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Client ID is required", nil)
		return
	}

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}
