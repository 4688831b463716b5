package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/email"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

type memEmailSender struct {
	sent    []email.SendRequest
	failAll bool
}

// Send records the request in memory.
// POST: request is appended unless failAll is set
func (s *memEmailSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if s.failAll {
		return email.SendResult{}, fmt.Errorf("provider unavailable")
	}
	s.sent = append(s.sent, req)
	return email.SendResult{MessageID: "msg-001"}, nil
}

func TestExecuteDecideApproval_Approve(t *testing.T) {
	store := newMemCommunityUserStore()
	seedCommunityUser(t, store, communityuser.StatusPending)
	sender := &memEmailSender{}

	result, err := ExecuteDecideApproval(context.Background(), DecideApprovalInput{
		UserID:  "cu-001",
		Status:  communityuser.StatusApproved,
		AdminID: "admin-001",
	}, DecideApprovalDeps{UserStore: store, Sender: sender, From: "CommunityHub <noreply@communityhub.io>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ApprovalStatus != communityuser.StatusApproved {
		t.Errorf("expected approved, got %q", result.ApprovalStatus)
	}
	if !result.EmailSent {
		t.Error("expected notification email to be sent")
	}

	stored := store.users["tama@example.com"]
	if stored.ApprovalStatus != communityuser.StatusApproved {
		t.Errorf("expected stored status approved, got %q", stored.ApprovalStatus)
	}
	if stored.DecidedBy != "admin-001" {
		t.Errorf("expected DecidedBy admin-001, got %q", stored.DecidedBy)
	}
	if stored.DecidedAt.IsZero() {
		t.Error("expected DecidedAt to be set")
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}
	if sender.sent[0].To[0] != "tama@example.com" {
		t.Errorf("email sent to wrong recipient: %v", sender.sent[0].To)
	}
}

func TestExecuteDecideApproval_Reject(t *testing.T) {
	store := newMemCommunityUserStore()
	seedCommunityUser(t, store, communityuser.StatusPending)
	sender := &memEmailSender{}

	result, err := ExecuteDecideApproval(context.Background(), DecideApprovalInput{
		UserID:  "cu-001",
		Status:  communityuser.StatusRejected,
		AdminID: "admin-001",
	}, DecideApprovalDeps{UserStore: store, Sender: sender})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ApprovalStatus != communityuser.StatusRejected {
		t.Errorf("expected rejected, got %q", result.ApprovalStatus)
	}
}

// An admin may reverse a rejection later; only repeating the same
// decision is refused.
func TestExecuteDecideApproval_OverrideRejection(t *testing.T) {
	store := newMemCommunityUserStore()
	seedCommunityUser(t, store, communityuser.StatusRejected)

	result, err := ExecuteDecideApproval(context.Background(), DecideApprovalInput{
		UserID:  "cu-001",
		Status:  communityuser.StatusApproved,
		AdminID: "admin-002",
	}, DecideApprovalDeps{UserStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ApprovalStatus != communityuser.StatusApproved {
		t.Errorf("expected approved, got %q", result.ApprovalStatus)
	}
}

func TestExecuteDecideApproval_SameDecisionTwice(t *testing.T) {
	store := newMemCommunityUserStore()
	seedCommunityUser(t, store, communityuser.StatusApproved)

	_, err := ExecuteDecideApproval(context.Background(), DecideApprovalInput{
		UserID:  "cu-001",
		Status:  communityuser.StatusApproved,
		AdminID: "admin-001",
	}, DecideApprovalDeps{UserStore: store})
	if !errors.Is(err, communityuser.ErrAlreadyDecided) {
		t.Errorf("expected ErrAlreadyDecided, got %v", err)
	}
}

func TestExecuteDecideApproval_InvalidStatus(t *testing.T) {
	store := newMemCommunityUserStore()
	seedCommunityUser(t, store, communityuser.StatusPending)

	_, err := ExecuteDecideApproval(context.Background(), DecideApprovalInput{
		UserID:  "cu-001",
		Status:  "banned",
		AdminID: "admin-001",
	}, DecideApprovalDeps{UserStore: store})
	if !errors.Is(err, communityuser.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

// A notification failure must not roll back the decision.
func TestExecuteDecideApproval_EmailFailureDoesNotRollBack(t *testing.T) {
	store := newMemCommunityUserStore()
	seedCommunityUser(t, store, communityuser.StatusPending)
	sender := &memEmailSender{failAll: true}

	result, err := ExecuteDecideApproval(context.Background(), DecideApprovalInput{
		UserID:  "cu-001",
		Status:  communityuser.StatusApproved,
		AdminID: "admin-001",
	}, DecideApprovalDeps{UserStore: store, Sender: sender})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EmailSent {
		t.Error("expected EmailSent false on provider failure")
	}
	if store.users["tama@example.com"].ApprovalStatus != communityuser.StatusApproved {
		t.Error("decision must persist despite email failure")
	}
}
