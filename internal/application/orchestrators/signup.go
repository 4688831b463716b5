package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"

	"github.com/google/uuid"
)

// CommunityUserStoreForSignup defines the store interface needed by Signup.
type CommunityUserStoreForSignup interface {
	GetByEmail(ctx context.Context, email string) (communityuser.CommunityUser, error)
	Save(ctx context.Context, u communityuser.CommunityUser) error
}

// SignupInput carries input for the community user signup orchestrator.
type SignupInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	AcceptedTerms   bool
}

// SignupResult carries the outcome of a signup. Status is always
// pending: the UI never assumes synchronous approval even if a backend
// policy would auto-approve.
type SignupResult struct {
	UserID string
	Email  string
	Status string
}

// SignupDeps holds dependencies for Signup.
type SignupDeps struct {
	UserStore CommunityUserStoreForSignup
}

var ErrUserAlreadyExists = errors.New("an account with this email already exists")

// ExecuteSignup validates the signup form and creates a pending
// community user. Validation failures never reach the store.
// PRE: none
// POST: On success a pending user exists; on failure nothing is written
func ExecuteSignup(ctx context.Context, input SignupInput, deps SignupDeps) (SignupResult, error) {
	if !input.AcceptedTerms {
		return SignupResult{}, communityuser.ErrTermsNotAccepted
	}
	if input.Password != input.ConfirmPassword {
		return SignupResult{}, communityuser.ErrPasswordMismatch
	}

	user := communityuser.CommunityUser{
		ID:             uuid.New().String(),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		ApprovalStatus: communityuser.StatusPending,
		CreatedAt:      time.Now(),
	}

	if err := user.Validate(); err != nil {
		return SignupResult{}, err
	}

	if err := user.SetPassword(input.Password); err != nil {
		return SignupResult{}, err
	}

	// Uniqueness is checked after field validation so the caller sees
	// field errors first.
	if _, err := deps.UserStore.GetByEmail(ctx, input.Email); err == nil {
		return SignupResult{}, ErrUserAlreadyExists
	}

	if err := deps.UserStore.Save(ctx, user); err != nil {
		return SignupResult{}, err
	}

	slog.Info("approval_event", "event", "signup", "email", input.Email, "status", user.ApprovalStatus)

	return SignupResult{
		UserID: user.ID,
		Email:  user.Email,
		Status: user.ApprovalStatus,
	}, nil
}
