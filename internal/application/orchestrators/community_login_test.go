package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

func seedCommunityUser(t *testing.T, store *memCommunityUserStore, status string) communityuser.CommunityUser {
	t.Helper()
	u := communityuser.CommunityUser{
		ID:             "cu-001",
		FirstName:      "Tama",
		LastName:       "Walker",
		Email:          "tama@example.com",
		ApprovalStatus: status,
		CreatedAt:      time.Now(),
	}
	if err := u.SetPassword("secret99"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := store.Save(context.Background(), u); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return u
}

func TestExecuteCommunityLogin_Approved(t *testing.T) {
	store := newMemCommunityUserStore()
	seedCommunityUser(t, store, communityuser.StatusApproved)

	result, err := ExecuteCommunityLogin(context.Background(), CommunityLoginInput{
		Email:    "tama@example.com",
		Password: "secret99",
	}, CommunityLoginDeps{UserStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Authenticated {
		t.Error("expected Authenticated true")
	}
	if result.ApprovalStatus != communityuser.StatusApproved {
		t.Errorf("expected approved, got %q", result.ApprovalStatus)
	}
	if result.FullName != "Tama Walker" {
		t.Errorf("expected full name, got %q", result.FullName)
	}
}

// Correct credentials while pending authenticate but report pending:
// the caller must not issue a session.
func TestExecuteCommunityLogin_PendingAuthenticatesWithoutAccess(t *testing.T) {
	store := newMemCommunityUserStore()
	seedCommunityUser(t, store, communityuser.StatusPending)

	result, err := ExecuteCommunityLogin(context.Background(), CommunityLoginInput{
		Email:    "tama@example.com",
		Password: "secret99",
	}, CommunityLoginDeps{UserStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Authenticated {
		t.Error("expected Authenticated true for correct credentials")
	}
	if result.ApprovalStatus != communityuser.StatusPending {
		t.Errorf("expected pending, got %q", result.ApprovalStatus)
	}
}

func TestExecuteCommunityLogin_Rejected(t *testing.T) {
	store := newMemCommunityUserStore()
	seedCommunityUser(t, store, communityuser.StatusRejected)

	result, err := ExecuteCommunityLogin(context.Background(), CommunityLoginInput{
		Email:    "tama@example.com",
		Password: "secret99",
	}, CommunityLoginDeps{UserStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ApprovalStatus != communityuser.StatusRejected {
		t.Errorf("expected rejected, got %q", result.ApprovalStatus)
	}
}

func TestExecuteCommunityLogin_WrongPassword(t *testing.T) {
	store := newMemCommunityUserStore()
	seedCommunityUser(t, store, communityuser.StatusApproved)

	_, err := ExecuteCommunityLogin(context.Background(), CommunityLoginInput{
		Email:    "tama@example.com",
		Password: "wrong999",
	}, CommunityLoginDeps{UserStore: store})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestExecuteCommunityLogin_UnknownEmail(t *testing.T) {
	store := newMemCommunityUserStore()

	_, err := ExecuteCommunityLogin(context.Background(), CommunityLoginInput{
		Email:    "nobody@example.com",
		Password: "secret99",
	}, CommunityLoginDeps{UserStore: store})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestExecuteCheckStatus(t *testing.T) {
	store := newMemCommunityUserStore()
	seedCommunityUser(t, store, communityuser.StatusPending)

	result, err := ExecuteCheckStatus(context.Background(), "tama@example.com", CheckStatusDeps{UserStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ApprovalStatus != communityuser.StatusPending {
		t.Errorf("expected pending, got %q", result.ApprovalStatus)
	}

	// Status reflects a decision made after login without re-auth.
	u := store.users["tama@example.com"]
	if err := u.Decide(communityuser.StatusApproved, "admin-001", time.Now()); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	store.users["tama@example.com"] = u

	result, err = ExecuteCheckStatus(context.Background(), "tama@example.com", CheckStatusDeps{UserStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ApprovalStatus != communityuser.StatusApproved {
		t.Errorf("expected approved after decision, got %q", result.ApprovalStatus)
	}
}

func TestExecuteCheckStatus_EmptyEmail(t *testing.T) {
	store := newMemCommunityUserStore()
	_, err := ExecuteCheckStatus(context.Background(), "", CheckStatusDeps{UserStore: store})
	if !errors.Is(err, communityuser.ErrEmptyEmail) {
		t.Errorf("expected ErrEmptyEmail, got %v", err)
	}
}
