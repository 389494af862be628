package integration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/finance"
	"github.com/dataprecision/margindesk-sub001/internal/domain/integration"
	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/books"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/cron"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/peoplehub"
)

const hrDateLayout = "02-Jan-2006"

// RegisterJobs wires the periodic sync jobs into the scheduler.
func RegisterJobs(scheduler *cron.Scheduler, svc integration.Service, interval time.Duration) {
	scheduler.AddJob("sync_books_bills", interval, func(ctx context.Context) error {
		_, err := svc.SyncBooks(ctx)
		return err
	})
	scheduler.AddJob("sync_peoplehub_employees", interval, func(ctx context.Context) error {
		_, err := svc.SyncPeopleHub(ctx)
		return err
	})
}

// SyncBooks implements integration.Service. Bills are matched on their
// platform ID, so re-running a sync updates rather than duplicates.
func (s *IntegrationServiceImpl) SyncBooks(ctx context.Context) (integration.SyncResult, error) {
	result := integration.SyncResult{
		Integration: integration.NameBooks,
		StartedAt:   time.Now().UTC(),
	}

	token, apiDomain, err := s.tokens.AccessToken(ctx, integration.NameBooks)
	if err != nil {
		return result, err
	}

	bills, err := s.booksClient.ListBills(ctx, apiDomain, token, s.booksCfg.OrganizationID)
	if err != nil {
		return result, fmt.Errorf("failed to fetch bills: %w", err)
	}
	result.Fetched = len(bills)

	for _, remote := range bills {
		b, err := mapRemoteBill(remote)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("bill %s: %v", remote.BillID, err))
			continue
		}
		if _, err := s.billRepo.UpsertByExternalID(ctx, b); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("bill %s: %v", remote.BillID, err))
			continue
		}
		result.Upserted++
	}

	result.FinishedAt = time.Now().UTC()
	slog.Info("Books sync finished", "fetched", result.Fetched, "upserted", result.Upserted, "failed", result.Failed)
	s.auditSync(ctx, result)
	return result, nil
}

// auditSync records a sync run. Failures are logged, never returned.
func (s *IntegrationServiceImpl) auditSync(ctx context.Context, result integration.SyncResult) {
	entry := integration.AuditLog{
		Action:   "integration.sync",
		Entity:   "integration",
		EntityID: result.Integration,
		Detail: map[string]interface{}{
			"fetched":  result.Fetched,
			"upserted": result.Upserted,
			"failed":   result.Failed,
		},
	}
	if err := s.auditRepo.Insert(ctx, entry); err != nil {
		slog.Error("Audit log write failed", "action", entry.Action, "integration", result.Integration, "error", err)
	}
}

func mapRemoteBill(remote books.Bill) (finance.Bill, error) {
	billDate, err := time.Parse("2006-01-02", remote.Date)
	if err != nil {
		return finance.Bill{}, fmt.Errorf("invalid bill date %q", remote.Date)
	}

	var billedFor *time.Time
	if remote.BilledForMonth != "" {
		d, err := time.Parse("2006-01-02", remote.BilledForMonth)
		if err != nil {
			return finance.Bill{}, fmt.Errorf("invalid billed-for-month %q", remote.BilledForMonth)
		}
		firstOfMonth := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		billedFor = &firstOfMonth
	}

	subTotal := remote.SubTotal
	externalID := remote.BillID
	return finance.Bill{
		VendorName:           remote.VendorName,
		BillNumber:           remote.BillNumber,
		BillDate:             billDate,
		BilledForMonth:       billedFor,
		SubTotal:             &subTotal,
		Total:                remote.Total,
		IncludeInCalculation: true,
		ExternalID:           &externalID,
	}, nil
}

// SyncPeopleHub implements integration.Service. Employees are matched on
// employee code; leaves are recorded against the matched person.
func (s *IntegrationServiceImpl) SyncPeopleHub(ctx context.Context) (integration.SyncResult, error) {
	result := integration.SyncResult{
		Integration: integration.NamePeopleHub,
		StartedAt:   time.Now().UTC(),
	}

	token, apiDomain, err := s.tokens.AccessToken(ctx, integration.NamePeopleHub)
	if err != nil {
		return result, err
	}

	employees, err := s.peopleClient.ListEmployees(ctx, apiDomain, token)
	if err != nil {
		return result, fmt.Errorf("failed to fetch employees: %w", err)
	}
	result.Fetched = len(employees)

	for _, remote := range employees {
		if err := s.upsertEmployee(ctx, remote); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("employee %s: %v", remote.EmployeeCode, err))
			continue
		}
		result.Upserted++
	}

	result.FinishedAt = time.Now().UTC()
	slog.Info("PeopleHub sync finished", "fetched", result.Fetched, "upserted", result.Upserted, "failed", result.Failed)
	s.auditSync(ctx, result)
	return result, nil
}

func (s *IntegrationServiceImpl) upsertEmployee(ctx context.Context, remote peoplehub.Employee) error {
	if remote.EmployeeCode == "" || remote.EmailID == "" {
		return fmt.Errorf("missing employee code or email")
	}

	startDate, err := time.Parse(hrDateLayout, remote.DateOfJoin)
	if err != nil {
		return fmt.Errorf("invalid joining date %q", remote.DateOfJoin)
	}

	var endDate *time.Time
	if remote.DateOfExit != "" {
		d, err := time.Parse(hrDateLayout, remote.DateOfExit)
		if err != nil {
			return fmt.Errorf("invalid exit date %q", remote.DateOfExit)
		}
		endDate = &d
	}

	existing, err := s.personRepo.GetByEmployeeCode(ctx, remote.EmployeeCode)
	if err == nil {
		existing.FullName = strings.TrimSpace(remote.FirstName + " " + remote.LastName)
		existing.Title = remote.Designation
		existing.Department = remote.Department
		existing.EndDate = endDate
		return s.personRepo.Update(ctx, existing)
	}
	if !errors.Is(err, person.ErrPersonNotFound) {
		return err
	}

	_, err = s.personRepo.Create(ctx, person.Person{
		FullName:       strings.TrimSpace(remote.FirstName + " " + remote.LastName),
		Email:          remote.EmailID,
		EmployeeCode:   remote.EmployeeCode,
		Title:          remote.Designation,
		Department:     remote.Department,
		Classification: person.ClassificationOperational,
		Billable:       true,
		StartDate:      startDate,
		EndDate:        endDate,
	})
	return err
}
