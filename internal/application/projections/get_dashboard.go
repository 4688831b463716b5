package projections

import (
	"context"

	academyStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/academy"
	communityStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/community"
	userStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/communityuser"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/academy"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/community"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

// DashboardCommunityStore defines the community store interface for the dashboard.
type DashboardCommunityStore interface {
	Count(ctx context.Context, filter communityStore.ListFilter) (int, error)
}

// DashboardAcademyStore defines the academy store interface for the dashboard.
type DashboardAcademyStore interface {
	Count(ctx context.Context, filter academyStore.ListFilter) (int, error)
}

// DashboardUserStore defines the community user store interface for the dashboard.
type DashboardUserStore interface {
	Count(ctx context.Context, filter userStore.ListFilter) (int, error)
}

// DashboardStats is the headline numbers block on the admin dashboard.
type DashboardStats struct {
	ActiveCommunities int `json:"activeCommunities"`
	Academies         int `json:"academies"`
	PendingApprovals  int `json:"pendingApprovals"`
	ApprovedUsers     int `json:"approvedUsers"`
}

// DashboardDeps holds dependencies for the dashboard projection.
type DashboardDeps struct {
	CommunityStore DashboardCommunityStore
	AcademyStore   DashboardAcademyStore
	UserStore      DashboardUserStore
}

// QueryDashboard assembles the dashboard stat counts.
// PRE: all stores are reachable
// POST: every count reflects current store state
func QueryDashboard(ctx context.Context, deps DashboardDeps) (DashboardStats, error) {
	activeCommunities, err := deps.CommunityStore.Count(ctx, communityStore.ListFilter{Status: community.StatusActive})
	if err != nil {
		return DashboardStats{}, err
	}

	academies, err := deps.AcademyStore.Count(ctx, academyStore.ListFilter{Status: academy.StatusActive})
	if err != nil {
		return DashboardStats{}, err
	}

	pending, err := deps.UserStore.Count(ctx, userStore.ListFilter{Status: communityuser.StatusPending})
	if err != nil {
		return DashboardStats{}, err
	}

	approved, err := deps.UserStore.Count(ctx, userStore.ListFilter{Status: communityuser.StatusApproved})
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		ActiveCommunities: activeCommunities,
		Academies:         academies,
		PendingApprovals:  pending,
		ApprovedUsers:     approved,
	}, nil
}
