package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

// --- in-memory test doubles ---

type memCommunityUserStore struct {
	users map[string]communityuser.CommunityUser // keyed by email
}

func newMemCommunityUserStore() *memCommunityUserStore {
	return &memCommunityUserStore{users: make(map[string]communityuser.CommunityUser)}
}

// GetByEmail retrieves a community user by email from memory.
// PRE: email is non-empty
// POST: returns user or error if not found
func (s *memCommunityUserStore) GetByEmail(_ context.Context, email string) (communityuser.CommunityUser, error) {
	u, ok := s.users[email]
	if !ok {
		return communityuser.CommunityUser{}, fmt.Errorf("not found")
	}
	return u, nil
}

// GetByID retrieves a community user by id from memory.
// POST: returns user or error if not found
func (s *memCommunityUserStore) GetByID(_ context.Context, id string) (communityuser.CommunityUser, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return communityuser.CommunityUser{}, fmt.Errorf("not found")
}

// Save persists a community user in memory.
// PRE: user has valid email
// POST: user is stored in memory map
func (s *memCommunityUserStore) Save(_ context.Context, u communityuser.CommunityUser) error {
	s.users[u.Email] = u
	return nil
}

func validSignupInput() SignupInput {
	return SignupInput{
		FirstName:       "Mere",
		LastName:        "Kingi",
		Email:           "mere@example.com",
		Password:        "hunter2x",
		ConfirmPassword: "hunter2x",
		AcceptedTerms:   true,
	}
}

// --- tests ---

func TestExecuteSignup_CreatesPendingUser(t *testing.T) {
	store := newMemCommunityUserStore()

	result, err := ExecuteSignup(context.Background(), validSignupInput(), SignupDeps{UserStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != communityuser.StatusPending {
		t.Errorf("expected status %q, got %q", communityuser.StatusPending, result.Status)
	}
	if result.UserID == "" {
		t.Error("expected a generated user ID")
	}

	stored, err := store.GetByEmail(context.Background(), "mere@example.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.ApprovalStatus != communityuser.StatusPending {
		t.Errorf("expected stored status pending, got %q", stored.ApprovalStatus)
	}
	if stored.PasswordHash == "" {
		t.Error("expected password hash to be set")
	}
	if stored.PasswordHash == "hunter2x" {
		t.Error("password must not be stored in plaintext")
	}
}

func TestExecuteSignup_PasswordBoundary(t *testing.T) {
	// 5 characters rejected, 6 accepted
	store := newMemCommunityUserStore()
	input := validSignupInput()
	input.Password = "12345"
	input.ConfirmPassword = "12345"

	_, err := ExecuteSignup(context.Background(), input, SignupDeps{UserStore: store})
	if !errors.Is(err, communityuser.ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort for 5 chars, got %v", err)
	}
	if len(store.users) != 0 {
		t.Error("nothing should be written on validation failure")
	}

	input.Password = "123456"
	input.ConfirmPassword = "123456"
	if _, err := ExecuteSignup(context.Background(), input, SignupDeps{UserStore: store}); err != nil {
		t.Errorf("expected 6-char password to be accepted, got %v", err)
	}
}

func TestExecuteSignup_PasswordMismatch(t *testing.T) {
	store := newMemCommunityUserStore()
	input := validSignupInput()
	input.ConfirmPassword = "different1"

	_, err := ExecuteSignup(context.Background(), input, SignupDeps{UserStore: store})
	if !errors.Is(err, communityuser.ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
	if len(store.users) != 0 {
		t.Error("nothing should be written on validation failure")
	}
}

func TestExecuteSignup_TermsNotAccepted(t *testing.T) {
	store := newMemCommunityUserStore()
	input := validSignupInput()
	input.AcceptedTerms = false

	_, err := ExecuteSignup(context.Background(), input, SignupDeps{UserStore: store})
	if !errors.Is(err, communityuser.ErrTermsNotAccepted) {
		t.Errorf("expected ErrTermsNotAccepted, got %v", err)
	}
}

func TestExecuteSignup_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupInput)
		wantErr error
	}{
		{"empty first name", func(i *SignupInput) { i.FirstName = "  " }, communityuser.ErrEmptyFirstName},
		{"empty last name", func(i *SignupInput) { i.LastName = "" }, communityuser.ErrEmptyLastName},
		{"empty email", func(i *SignupInput) { i.Email = "" }, communityuser.ErrEmptyEmail},
		{"malformed email", func(i *SignupInput) { i.Email = "mere.example.com" }, communityuser.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemCommunityUserStore()
			input := validSignupInput()
			tt.mutate(&input)

			_, err := ExecuteSignup(context.Background(), input, SignupDeps{UserStore: store})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if len(store.users) != 0 {
				t.Error("nothing should be written on validation failure")
			}
		})
	}
}

func TestExecuteSignup_DuplicateEmail(t *testing.T) {
	store := newMemCommunityUserStore()
	if _, err := ExecuteSignup(context.Background(), validSignupInput(), SignupDeps{UserStore: store}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := ExecuteSignup(context.Background(), validSignupInput(), SignupDeps{UserStore: store})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Errorf("expected ErrUserAlreadyExists, got %v", err)
	}
}
