package orchestrators

import (
	"context"
	"log/slog"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

// CommunityUserStoreForLogin defines the store interface needed by CommunityLogin.
type CommunityUserStoreForLogin interface {
	GetByEmail(ctx context.Context, email string) (communityuser.CommunityUser, error)
}

// CommunityLoginInput carries input for the community user login orchestrator.
type CommunityLoginInput struct {
	Email    string
	Password string
}

// CommunityLoginResult carries the outcome of a community user login.
// Authenticated is true whenever the credentials matched; whether the
// caller gets a session depends on ApprovalStatus. Only approved users
// are granted access.
type CommunityLoginResult struct {
	UserID         string
	Email          string
	FullName       string
	ApprovalStatus string
	Authenticated  bool
}

// CommunityLoginDeps holds dependencies for CommunityLogin.
type CommunityLoginDeps struct {
	UserStore CommunityUserStoreForLogin
}

// ExecuteCommunityLogin checks credentials and reports the approval
// status. Pending and rejected users authenticate but receive no
// session; the handler routes them to the waiting or rejection screen.
// PRE: Valid email and password provided
// POST: Authenticated is true iff credentials matched
// INVARIANT: Approval status is never changed by a login attempt
func ExecuteCommunityLogin(ctx context.Context, input CommunityLoginInput, deps CommunityLoginDeps) (CommunityLoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return CommunityLoginResult{}, ErrInvalidCredentials
	}

	user, err := deps.UserStore.GetByEmail(ctx, input.Email)
	if err != nil {
		slog.Info("auth_event", "event", "community_login_failed", "email", input.Email, "reason", "not_found")
		return CommunityLoginResult{}, ErrInvalidCredentials
	}

	if err := user.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "community_login_failed", "email", input.Email, "reason", "wrong_password")
		return CommunityLoginResult{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "community_login", "email", input.Email, "status", user.ApprovalStatus)

	return CommunityLoginResult{
		UserID:         user.ID,
		Email:          user.Email,
		FullName:       user.FullName(),
		ApprovalStatus: user.ApprovalStatus,
		Authenticated:  true,
	}, nil
}
