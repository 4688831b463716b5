package orchestrators

import (
	"context"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

// StatusResult carries the approval status lookup for the waiting screen.
type StatusResult struct {
	Email          string
	ApprovalStatus string
}

// CheckStatusDeps holds dependencies for CheckStatus.
type CheckStatusDeps struct {
	UserStore CommunityUserStoreForLogin
}

// ExecuteCheckStatus returns the current approval status for an email.
// The waiting screen polls this; it must reflect the latest decision
// without requiring a fresh login.
// PRE: email is non-empty
// POST: Returns the stored status, never a cached one
func ExecuteCheckStatus(ctx context.Context, email string, deps CheckStatusDeps) (StatusResult, error) {
	if email == "" {
		return StatusResult{}, communityuser.ErrEmptyEmail
	}
	user, err := deps.UserStore.GetByEmail(ctx, email)
	if err != nil {
		return StatusResult{}, err
	}
	return StatusResult{Email: user.Email, ApprovalStatus: user.ApprovalStatus}, nil
}
