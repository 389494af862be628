package pod

import (
	"context"
	"time"
)

type PodService interface {
	Create(ctx context.Context, req CreatePodRequest) (FinancialPod, error)
	Get(ctx context.Context, id string) (FinancialPod, error)
	List(ctx context.Context) ([]FinancialPod, error)
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, podID string, req AddMemberRequest) (Membership, error)
	RemoveMember(ctx context.Context, membershipID string, endDate time.Time) error
	ListMembers(ctx context.Context, podID string, activeIn *time.Time) ([]Membership, error)

	MapProject(ctx context.Context, podID string, req MapProjectRequest) (ProjectMapping, error)
	UnmapProject(ctx context.Context, mappingID string, endDate time.Time) error
	ListProjects(ctx context.Context, podID string, activeIn *time.Time) ([]ProjectMapping, error)

	// MonthlySummary rolls up active member salaries and mapped-project
	// cost entries for the month.
	MonthlySummary(ctx context.Context, podID string, month time.Time) (MonthlySummaryResponse, error)
}
