package response

import (
	"errors"
	"net/http"

	"github.com/dataprecision/margindesk-sub001/internal/domain/allocation"
	"github.com/dataprecision/margindesk-sub001/internal/domain/auth"
	"github.com/dataprecision/margindesk-sub001/internal/domain/calendar"
	"github.com/dataprecision/margindesk-sub001/internal/domain/client"
	"github.com/dataprecision/margindesk-sub001/internal/domain/finance"
	"github.com/dataprecision/margindesk-sub001/internal/domain/integration"
	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/domain/pod"
	"github.com/dataprecision/margindesk-sub001/internal/domain/project"
	"github.com/dataprecision/margindesk-sub001/internal/domain/reselling"
	"github.com/dataprecision/margindesk-sub001/internal/domain/user"
	"github.com/dataprecision/margindesk-sub001/internal/domain/utilization"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var overAlloc *reselling.OverAllocationError
	if errors.As(err, &overAlloc) {
		BadRequest(w, err.Error(), map[string]string{
			"bill_id":       overAlloc.BillID,
			"current_total": overAlloc.CurrentTotal.String(),
			"attempted":     overAlloc.Attempted.String(),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrFinanceAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// People domain errors
	case errors.Is(err, person.ErrPersonNotFound):
		NotFound(w, "Person not found")
	case errors.Is(err, person.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, person.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, person.ErrPersonReferenced):
		Conflict(w, "Person is referenced by other records")
	case errors.Is(err, person.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")

	// Client and project domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientExists):
		Conflict(w, "Client name already exists")
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectExists):
		Conflict(w, "Project already exists for this client")
	case errors.Is(err, project.ErrProjectCostNotFound):
		NotFound(w, "Project cost entry not found")

	// Allocation domain errors
	case errors.Is(err, allocation.ErrAllocationNotFound):
		NotFound(w, "Allocation not found")
	case errors.Is(err, allocation.ErrAllocationExists):
		Conflict(w, "Allocation already exists for this person, project and month")

	// Finance domain errors
	case errors.Is(err, finance.ErrBillNotFound):
		NotFound(w, "Bill not found")
	case errors.Is(err, finance.ErrBillNumberExists):
		Conflict(w, "Bill number already exists for this vendor")
	case errors.Is(err, finance.ErrExpenseNotFound):
		NotFound(w, "Expense not found")

	// Reselling domain errors
	case errors.Is(err, reselling.ErrInvoiceNotFound):
		NotFound(w, "Reselling invoice not found")
	case errors.Is(err, reselling.ErrAllocationNotFound):
		NotFound(w, "Bill allocation not found")
	case errors.Is(err, reselling.ErrAllocationExists):
		Conflict(w, "Bill is already allocated to this invoice")

	// Pod domain errors
	case errors.Is(err, pod.ErrPodNotFound):
		NotFound(w, "Pod not found")
	case errors.Is(err, pod.ErrPodNameExists):
		Conflict(w, "Pod name already exists")
	case errors.Is(err, pod.ErrMembershipNotFound):
		NotFound(w, "Pod membership not found")
	case errors.Is(err, pod.ErrMappingNotFound):
		NotFound(w, "Pod project mapping not found")
	case errors.Is(err, pod.ErrAlreadyActiveInPod):
		Conflict(w, "Person already has an active membership in this pod")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, calendar.ErrHolidayExists):
		Conflict(w, "Holiday already exists on this date")
	case errors.Is(err, calendar.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")

	// Utilization domain errors
	case errors.Is(err, utilization.ErrNotFound):
		NotFound(w, "Utilization record not found")

	// Integration domain errors
	case errors.Is(err, integration.ErrNotConnected):
		BadRequest(w, "Integration not connected", nil)
	case errors.Is(err, integration.ErrSettingsNotFound):
		NotFound(w, "Integration settings not found")
	case errors.Is(err, integration.ErrUnknownProvider):
		NotFound(w, "Unknown integration provider")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
