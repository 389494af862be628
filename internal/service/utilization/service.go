package utilization

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/allocation"
	"github.com/dataprecision/margindesk-sub001/internal/domain/calendar"
	"github.com/dataprecision/margindesk-sub001/internal/domain/integration"
	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/domain/utilization"
)

type UtilizationServiceImpl struct {
	utilizationRepo utilization.Repository
	allocationRepo  allocation.AllocationRepository
	personRepo      person.PersonRepository
	holidayRepo     calendar.HolidayRepository
	leaveRepo       calendar.LeaveRepository
	auditRepo       integration.AuditRepository
}

func NewUtilizationService(
	utilizationRepo utilization.Repository,
	allocationRepo allocation.AllocationRepository,
	personRepo person.PersonRepository,
	holidayRepo calendar.HolidayRepository,
	leaveRepo calendar.LeaveRepository,
	auditRepo integration.AuditRepository,
) utilization.Service {
	return &UtilizationServiceImpl{
		utilizationRepo: utilizationRepo,
		allocationRepo:  allocationRepo,
		personRepo:      personRepo,
		holidayRepo:     holidayRepo,
		leaveRepo:       leaveRepo,
		auditRepo:       auditRepo,
	}
}

// Recalculate implements utilization.Service.
func (s *UtilizationServiceImpl) Recalculate(ctx context.Context, personID string, month time.Time) (utilization.Response, error) {
	p, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		return utilization.Response{}, err
	}

	row, err := s.calculate(ctx, p, month)
	if err != nil {
		return utilization.Response{}, err
	}

	saved, err := s.utilizationRepo.Upsert(ctx, row)
	if err != nil {
		return utilization.Response{}, fmt.Errorf("failed to save utilization: %w", err)
	}

	return utilization.ToResponse(saved), nil
}

// RecalculateMonth implements utilization.Service.
func (s *UtilizationServiceImpl) RecalculateMonth(ctx context.Context, month time.Time) (utilization.BatchResult, error) {
	people, err := s.personRepo.ListEmployedIn(ctx, month)
	if err != nil {
		return utilization.BatchResult{}, fmt.Errorf("failed to list people for month: %w", err)
	}

	result := utilization.BatchResult{Month: month.Format("2006-01")}
	for _, p := range people {
		row, err := s.calculate(ctx, p, month)
		if err == nil {
			_, err = s.utilizationRepo.Upsert(ctx, row)
		}
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", p.FullName, err))
			slog.Warn("Failed to recalculate utilization for person", "person_id", p.ID, "month", result.Month, "error", err)
			continue
		}
		result.Processed++
	}

	slog.Info("Recalculated monthly utilization", "month", result.Month, "processed", result.Processed, "failed", result.Failed)

	// Best effort, a failed audit write never fails the recalculation.
	entry := integration.AuditLog{
		Action: "utilization.recalculate",
		Entity: "utilization_month",
		Detail: map[string]interface{}{
			"month":     result.Month,
			"processed": result.Processed,
			"failed":    result.Failed,
		},
	}
	if err := s.auditRepo.Insert(ctx, entry); err != nil {
		slog.Error("Audit log write failed", "action", entry.Action, "error", err)
	}

	return result, nil
}

// RecalculateLastN implements utilization.Service.
func (s *UtilizationServiceImpl) RecalculateLastN(ctx context.Context, months int) ([]utilization.BatchResult, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now().UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	results := make([]utilization.BatchResult, 0, months)
	for i := 0; i < months; i++ {
		month := current.AddDate(0, -i, 0)
		result, err := s.RecalculateMonth(ctx, month)
		if err != nil {
			result = utilization.BatchResult{Month: month.Format("2006-01")}
			result.Errors = append(result.Errors, err.Error())
			slog.Warn("Failed to recalculate utilization for month", "month", result.Month, "error", err)
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *UtilizationServiceImpl) calculate(ctx context.Context, p person.Person, month time.Time) (utilization.MonthlyUtilization, error) {
	firstDay := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	summary, err := s.allocationRepo.SumHoursForMonth(ctx, p.ID, firstDay)
	if err != nil {
		return utilization.MonthlyUtilization{}, fmt.Errorf("failed to sum allocation hours: %w", err)
	}

	holidays, err := s.holidayRepo.CountPublicInRange(ctx, firstDay, lastDay)
	if err != nil {
		return utilization.MonthlyUtilization{}, fmt.Errorf("failed to count holidays: %w", err)
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, p.ID, firstDay, lastDay)
	if err != nil {
		return utilization.MonthlyUtilization{}, fmt.Errorf("failed to list leaves: %w", err)
	}

	var leaveDays float64
	for _, l := range leaves {
		leaveDays += l.OverlapDays(firstDay, lastDay)
	}

	return Calculate(CalcInput{
		PersonID:       p.ID,
		Month:          firstDay,
		Billable:       summary.HoursBillable,
		NonBillable:    summary.HoursNonBillable,
		PublicHolidays: holidays,
		LeaveDays:      leaveDays,
	}), nil
}

// GetByPersonMonth implements utilization.Service.
func (s *UtilizationServiceImpl) GetByPersonMonth(ctx context.Context, personID string, month time.Time) (utilization.Response, error) {
	row, err := s.utilizationRepo.GetByPersonMonth(ctx, personID, month)
	if err != nil {
		return utilization.Response{}, err
	}
	return utilization.ToResponse(row), nil
}

// ListByMonth implements utilization.Service.
func (s *UtilizationServiceImpl) ListByMonth(ctx context.Context, month time.Time) ([]utilization.Response, error) {
	rows, err := s.utilizationRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	responses := make([]utilization.Response, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, utilization.ToResponse(row))
	}
	return responses, nil
}

// ListByPerson implements utilization.Service. months counts backwards from
// the current month, inclusive.
func (s *UtilizationServiceImpl) ListByPerson(ctx context.Context, personID string, months int) ([]utilization.Response, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, -(months - 1), 0)

	rows, err := s.utilizationRepo.ListByPerson(ctx, personID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]utilization.Response, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, utilization.ToResponse(row))
	}
	return responses, nil
}
