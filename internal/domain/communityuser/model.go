package communityuser

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Approval status constants. A freshly signed-up user is always pending;
// only an admin decision moves the status.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// MinPasswordLength is the minimum for self-service signups.
const MinPasswordLength = 6

// ValidStatuses contains all valid approval status values.
var ValidStatuses = []string{StatusPending, StatusApproved, StatusRejected}

// Domain errors
var (
	ErrEmptyFirstName      = errors.New("first name cannot be empty")
	ErrEmptyLastName       = errors.New("last name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("email must contain '@'")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrTermsNotAccepted    = errors.New("you must accept the terms to sign up")
	ErrWrongPassword       = errors.New("incorrect password")
	ErrInvalidStatus       = errors.New("approval status must be one of: pending, approved, rejected")
	ErrAlreadyDecided      = errors.New("approval has already been decided")
	ErrNotPendingOrDecided = errors.New("user has no approval record")
)

// CommunityUser is a self-registered member of a community, gated by
// admin approval before any student-facing access.
type CommunityUser struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	ApprovalStatus string
	DecidedBy      string
	DecidedAt      time.Time
	CreatedAt      time.Time
}

// Validate checks if the CommunityUser has valid data.
// PRE: CommunityUser struct is populated
// POST: Returns nil if valid, error otherwise
func (u *CommunityUser) Validate() error {
	if strings.TrimSpace(u.FirstName) == "" {
		return ErrEmptyFirstName
	}
	if strings.TrimSpace(u.LastName) == "" {
		return ErrEmptyLastName
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if !isValidStatus(u.ApprovalStatus) {
		return ErrInvalidStatus
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt.
// PRE: plaintext is non-empty and >= 6 characters
// POST: PasswordHash is set to bcrypt hash
func (u *CommunityUser) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: CommunityUser fields are not mutated
func (u *CommunityUser) CheckPassword(plaintext string) error {
	if u.PasswordHash == "" {
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsApproved returns true if the user may access student-facing routes.
// INVARIANT: CommunityUser fields are not mutated
func (u *CommunityUser) IsApproved() bool {
	return u.ApprovalStatus == StatusApproved
}

// IsRejected returns true if the user's application was rejected.
// Rejection is terminal for the user; only Decide (an admin action)
// can change it again.
// INVARIANT: CommunityUser fields are not mutated
func (u *CommunityUser) IsRejected() bool {
	return u.ApprovalStatus == StatusRejected
}

// Decide records an admin approval decision.
// PRE: status is approved or rejected; adminID is non-empty
// POST: ApprovalStatus, DecidedBy and DecidedAt are set
func (u *CommunityUser) Decide(status, adminID string, now time.Time) error {
	if status != StatusApproved && status != StatusRejected {
		return ErrInvalidStatus
	}
	if u.ApprovalStatus == status {
		return ErrAlreadyDecided
	}
	u.ApprovalStatus = status
	u.DecidedBy = adminID
	u.DecidedAt = now
	return nil
}

// FullName joins first and last name for display.
// INVARIANT: CommunityUser fields are not mutated
func (u *CommunityUser) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func isValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
