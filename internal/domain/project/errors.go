package project

import "errors"

var (
	ErrProjectNotFound     = errors.New("Project not found")
	ErrProjectExists       = errors.New("Project already exists for this client")
	ErrProjectCostNotFound = errors.New("Project cost entry not found")
)
