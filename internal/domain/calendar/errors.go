package calendar

import "errors"

var (
	ErrHolidayNotFound = errors.New("Holiday not found")
	ErrHolidayExists   = errors.New("Holiday already exists on this date")
	ErrLeaveNotFound   = errors.New("Leave record not found")
)
