package projections

import (
	"context"
	"time"

	userStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/communityuser"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/listutil"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

// ApprovalQueueUserStore defines the community user store interface for the queue.
type ApprovalQueueUserStore interface {
	List(ctx context.Context, filter userStore.ListFilter) ([]communityuser.CommunityUser, error)
	Count(ctx context.Context, filter userStore.ListFilter) (int, error)
}

// ApprovalQueueInput carries the queue filter parameters. An empty
// Status lists every user regardless of decision.
type ApprovalQueueInput struct {
	Status  string
	Search  string
	Page    int
	PerPage int
}

// ApprovalQueueEntry is one row in the admin approval queue.
type ApprovalQueueEntry struct {
	ID             string    `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	ApprovalStatus string    `json:"approvalStatus"`
	DecidedBy      string    `json:"decidedBy,omitempty"`
	SignedUpAt     time.Time `json:"signedUpAt"`
}

// ApprovalQueueResult is the paginated approval queue.
type ApprovalQueueResult struct {
	Entries  []ApprovalQueueEntry
	PageInfo listutil.PageInfo
}

// ApprovalQueueDeps holds dependencies for the approval queue projection.
type ApprovalQueueDeps struct {
	UserStore ApprovalQueueUserStore
}

// QueryApprovalQueue lists community users for the admin decision
// screen, filtered by status.
// PRE: Status is empty or a valid approval status
// POST: returns at most PerPage entries plus accurate page metadata
func QueryApprovalQueue(ctx context.Context, input ApprovalQueueInput, deps ApprovalQueueDeps) (ApprovalQueueResult, error) {
	if input.Status != "" {
		valid := false
		for _, s := range communityuser.ValidStatuses {
			if s == input.Status {
				valid = true
			}
		}
		if !valid {
			return ApprovalQueueResult{}, communityuser.ErrInvalidStatus
		}
	}

	filter := userStore.ListFilter{
		Status: input.Status,
		Search: input.Search,
	}

	total, err := deps.UserStore.Count(ctx, filter)
	if err != nil {
		return ApprovalQueueResult{}, err
	}

	info := listutil.NewPageInfo(input.Page, input.PerPage, total)
	filter.Limit = info.PerPage
	filter.Offset = info.Offset()

	users, err := deps.UserStore.List(ctx, filter)
	if err != nil {
		return ApprovalQueueResult{}, err
	}

	entries := make([]ApprovalQueueEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, ApprovalQueueEntry{
			ID:             u.ID,
			FullName:       u.FullName(),
			Email:          u.Email,
			ApprovalStatus: u.ApprovalStatus,
			DecidedBy:      u.DecidedBy,
			SignedUpAt:     u.CreatedAt,
		})
	}

	return ApprovalQueueResult{Entries: entries, PageInfo: info}, nil
}
