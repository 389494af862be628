package http

import (
	"log/slog"
	"net/http"

	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/dataprecision/margindesk-sub001/internal/service/importer"
)

type ImportHandler interface {
	ImportTimesheet(w http.ResponseWriter, r *http.Request)
	ImportSalaries(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importService importer.ImportService
}

func NewImportHandler(importService importer.ImportService) ImportHandler {
	return &importHandlerImpl{importService: importService}
}

// ImportTimesheet implements ImportHandler
func (h *importHandlerImpl) ImportTimesheet(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 20MB)
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "CSV file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	summary, err := h.importService.ImportTimesheet(r.Context(), file)
	if err != nil {
		slog.Error("Timesheet import failed", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Timesheet import finished", "imported", summary.Imported, "skipped", summary.Skipped)
	response.SuccessWithMessage(w, "Timesheet imported", summary)
}

// ImportSalaries implements ImportHandler
func (h *importHandlerImpl) ImportSalaries(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 20MB)
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "CSV file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	summary, err := h.importService.ImportSalaries(r.Context(), file)
	if err != nil {
		slog.Error("Salary import failed", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary import finished", "imported", summary.Imported, "skipped", summary.Skipped)
	response.SuccessWithMessage(w, "Salaries imported", summary)
}
