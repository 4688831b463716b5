package academy

import (
	"errors"
	"strings"
	"time"
)

// Academy status constants.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("academy name cannot be empty")
	ErrEmptyCommunity = errors.New("academy must belong to a community")
	ErrInvalidEmail   = errors.New("contact email must contain '@'")
	ErrInvalidStatus  = errors.New("academy status must be active or inactive")
)

// Academy is a school within a community tenant.
type Academy struct {
	ID           string
	CommunityID  string
	Name         string
	Address      string
	ContactEmail string
	Status       string
	CreatedAt    time.Time
}

// Validate checks if the Academy has valid data.
// PRE: Academy struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Academy) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(a.CommunityID) == "" {
		return ErrEmptyCommunity
	}
	if a.ContactEmail != "" && !strings.Contains(a.ContactEmail, "@") {
		return ErrInvalidEmail
	}
	if a.Status != StatusActive && a.Status != StatusInactive {
		return ErrInvalidStatus
	}
	return nil
}
