package importer

import (
	"context"
	"io"
	"log/slog"

	"github.com/dataprecision/margindesk-sub001/internal/domain/allocation"
	"github.com/dataprecision/margindesk-sub001/internal/domain/client"
	"github.com/dataprecision/margindesk-sub001/internal/domain/integration"
	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/domain/project"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
)

// Summary reports an import run. An import is a partial success when at
// least one row landed; skipped rows carry their reasons in Errors.
type Summary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

type ImportService interface {
	// ImportTimesheet replaces timesheet entries for the CSV's date range
	// with the file's contents. Malformed rows are skipped and recorded.
	ImportTimesheet(ctx context.Context, r io.Reader) (Summary, error)
	// ImportSalaries replaces all salary rows for the month named in the
	// CSV's amount-column header.
	ImportSalaries(ctx context.Context, r io.Reader) (Summary, error)
}

type ImportServiceImpl struct {
	db            *database.DB
	timesheetRepo allocation.TimesheetRepository
	personRepo    person.PersonRepository
	salaryRepo    person.SalaryRepository
	clientRepo    client.ClientRepository
	projectRepo   project.ProjectRepository
	auditRepo     integration.AuditRepository
}

func NewImportService(
	db *database.DB,
	timesheetRepo allocation.TimesheetRepository,
	personRepo person.PersonRepository,
	salaryRepo person.SalaryRepository,
	clientRepo client.ClientRepository,
	projectRepo project.ProjectRepository,
	auditRepo integration.AuditRepository,
) ImportService {
	return &ImportServiceImpl{
		db:            db,
		timesheetRepo: timesheetRepo,
		personRepo:    personRepo,
		salaryRepo:    salaryRepo,
		clientRepo:    clientRepo,
		projectRepo:   projectRepo,
		auditRepo:     auditRepo,
	}
}

// audit records an import run. Failures are logged, never returned.
func (s *ImportServiceImpl) audit(ctx context.Context, action string, summary Summary) {
	entry := integration.AuditLog{
		Action: action,
		Entity: "import",
		Detail: map[string]interface{}{
			"imported": summary.Imported,
			"skipped":  summary.Skipped,
		},
	}
	if err := s.auditRepo.Insert(ctx, entry); err != nil {
		slog.Error("Audit log write failed", "action", action, "error", err)
	}
}
