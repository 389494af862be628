package pod

import "errors"

var (
	ErrPodNotFound        = errors.New("Pod not found")
	ErrPodNameExists      = errors.New("Pod name already exists")
	ErrMembershipNotFound = errors.New("Pod membership not found")
	ErrMappingNotFound    = errors.New("Pod project mapping not found")
	ErrAlreadyActiveInPod = errors.New("Person already has an active membership in this pod")
)
