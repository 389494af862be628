package allocation

import "errors"

var (
	ErrAllocationNotFound = errors.New("Allocation not found")
	ErrAllocationExists   = errors.New("Allocation already exists for this person, project and month")
)
