package calendar

import (
	"context"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/calendar"
	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
)

type CalendarServiceImpl struct {
	holidayRepo calendar.HolidayRepository
	leaveRepo   calendar.LeaveRepository
	personRepo  person.PersonRepository
}

func NewCalendarService(
	holidayRepo calendar.HolidayRepository,
	leaveRepo calendar.LeaveRepository,
	personRepo person.PersonRepository,
) calendar.CalendarService {
	return &CalendarServiceImpl{
		holidayRepo: holidayRepo,
		leaveRepo:   leaveRepo,
		personRepo:  personRepo,
	}
}

// CreateHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) CreateHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.Holiday, error) {
	if err := req.Validate(); err != nil {
		return calendar.Holiday{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	return s.holidayRepo.Create(ctx, calendar.Holiday{
		Date: date,
		Name: req.Name,
		Type: calendar.HolidayType(req.Type),
	})
}

// ListHolidays implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context, from, to time.Time) ([]calendar.Holiday, error) {
	return s.holidayRepo.ListByRange(ctx, from, to)
}

// DeleteHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

// CreateLeave implements calendar.CalendarService. Manually entered leave is
// recorded as approved; the pending/rejected states exist for synced records.
func (s *CalendarServiceImpl) CreateLeave(ctx context.Context, req calendar.CreateLeaveRequest) (calendar.Leave, error) {
	if err := req.Validate(); err != nil {
		return calendar.Leave{}, err
	}

	if _, err := s.personRepo.GetByID(ctx, req.PersonID); err != nil {
		return calendar.Leave{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)
	return s.leaveRepo.Create(ctx, calendar.Leave{
		PersonID:  req.PersonID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    calendar.LeaveStatusApproved,
		Days:      req.Days,
	})
}

// ListLeaves implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListLeaves(ctx context.Context, personID string, from, to time.Time) ([]calendar.Leave, error) {
	return s.leaveRepo.ListApprovedOverlapping(ctx, personID, from, to)
}

// SetLeaveStatus implements calendar.CalendarService.
func (s *CalendarServiceImpl) SetLeaveStatus(ctx context.Context, id string, status calendar.LeaveStatus) error {
	switch status {
	case calendar.LeaveStatusPending, calendar.LeaveStatusApproved, calendar.LeaveStatusRejected:
	default:
		return validator.ValidationErrors{
			{Field: "status", Message: "must be 'pending', 'approved' or 'rejected'"},
		}
	}
	return s.leaveRepo.UpdateStatus(ctx, id, status)
}

// DeleteLeave implements calendar.CalendarService.
func (s *CalendarServiceImpl) DeleteLeave(ctx context.Context, id string) error {
	return s.leaveRepo.Delete(ctx, id)
}
