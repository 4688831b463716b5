package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/email"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

// CommunityUserStoreForDecide defines the store interface needed by DecideApproval.
type CommunityUserStoreForDecide interface {
	GetByID(ctx context.Context, id string) (communityuser.CommunityUser, error)
	Save(ctx context.Context, u communityuser.CommunityUser) error
}

// DecideApprovalInput carries input for the approval decision orchestrator.
type DecideApprovalInput struct {
	UserID  string
	Status  string
	AdminID string
}

// DecideApprovalResult carries the outcome of an approval decision.
type DecideApprovalResult struct {
	Email          string
	ApprovalStatus string
	EmailSent      bool
}

// DecideApprovalDeps holds dependencies for DecideApproval.
type DecideApprovalDeps struct {
	UserStore CommunityUserStoreForDecide
	Sender    email.Sender
	From      string
	ReplyTo   string
}

// ExecuteDecideApproval applies an admin approve/reject decision and
// notifies the user by email. The notification is best-effort: a send
// failure does not roll back the decision.
// PRE: Status is approved or rejected; AdminID identifies the deciding admin
// POST: The stored status reflects the decision before any email is sent
func ExecuteDecideApproval(ctx context.Context, input DecideApprovalInput, deps DecideApprovalDeps) (DecideApprovalResult, error) {
	user, err := deps.UserStore.GetByID(ctx, input.UserID)
	if err != nil {
		return DecideApprovalResult{}, err
	}

	if err := user.Decide(input.Status, input.AdminID, time.Now()); err != nil {
		return DecideApprovalResult{}, err
	}

	if err := deps.UserStore.Save(ctx, user); err != nil {
		return DecideApprovalResult{}, err
	}

	slog.Info("approval_event", "event", "decision", "email", user.Email, "status", user.ApprovalStatus, "admin", input.AdminID)

	result := DecideApprovalResult{
		Email:          user.Email,
		ApprovalStatus: user.ApprovalStatus,
	}

	if deps.Sender != nil {
		subject, body := decisionEmail(user)
		_, err := deps.Sender.Send(ctx, email.SendRequest{
			To:      []string{user.Email},
			From:    deps.From,
			Subject: subject,
			HTML:    body,
			ReplyTo: deps.ReplyTo,
		})
		if err != nil {
			slog.Error("approval_event", "event", "notify_failed", "email", user.Email, "error", err)
		} else {
			result.EmailSent = true
		}
	}

	return result, nil
}

func decisionEmail(user communityuser.CommunityUser) (subject, body string) {
	if user.IsApproved() {
		subject = "Your account has been approved"
		body = fmt.Sprintf("<p>Hi %s,</p><p>Your account has been approved. You can now sign in and access your community.</p>", user.FullName())
		return subject, body
	}
	subject = "Update on your account application"
	body = fmt.Sprintf("<p>Hi %s,</p><p>Unfortunately your account application was not approved. Reply to this email if you believe this is a mistake.</p>", user.FullName())
	return subject, body
}
