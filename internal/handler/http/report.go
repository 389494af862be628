package http

import (
	"net/http"

	"github.com/dataprecision/margindesk-sub001/internal/domain/report"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/response"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
)

type ReportHandler interface {
	ProfitLoss(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// ProfitLoss implements ReportHandler
func (h *reportHandlerImpl) ProfitLoss(w http.ResponseWriter, r *http.Request) {
	month, ok := validator.IsValidMonth(r.URL.Query().Get("month"))
	if !ok {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	result, err := h.reportService.BuildProfitLoss(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
