package person

import "errors"

var (
	ErrPersonNotFound     = errors.New("Person not found")
	ErrEmployeeCodeExists = errors.New("Employee code already exists")
	ErrEmailExists        = errors.New("Email already registered")
	ErrPersonReferenced   = errors.New("Person is referenced by other records")
	ErrSalaryNotFound     = errors.New("Salary record not found")
)
