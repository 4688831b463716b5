package community

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Category codes and their display labels, as offered by the creation
// wizard. The wizard stores the code; display surfaces use the label.
const (
	CategoryEducation   = "education"
	CategoryFitness     = "fitness"
	CategoryArts        = "arts"
	CategoryTechnology  = "technology"
	CategoryBusiness    = "business"
	CategoryLifestyle   = "lifestyle"
)

// CategoryLabels maps category codes to display labels.
var CategoryLabels = map[string]string{
	CategoryEducation:  "Education & Courses",
	CategoryFitness:    "Fitness & Sports",
	CategoryArts:       "Arts & Creativity",
	CategoryTechnology: "Technology & Coding",
	CategoryBusiness:   "Business & Finance",
	CategoryLifestyle:  "Lifestyle & Wellness",
}

// Community status constants.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Domain errors
var (
	ErrEmptyName          = errors.New("community name cannot be empty")
	ErrInvalidName        = errors.New("community name may only contain lowercase letters, digits and hyphens")
	ErrEmptyDescription   = errors.New("community description cannot be empty")
	ErrInvalidCategory    = errors.New("unknown community category")
	ErrEmptyPlan          = errors.New("community must reference a plan")
	ErrNotFound           = errors.New("community not found")
)

// namePattern constrains community names to subdomain-safe slugs.
var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Community is a tenant organization on the platform, identified by a
// unique subdomain-safe name.
type Community struct {
	ID             string
	Name           string // unique slug, doubles as the URL segment
	DisplayName    string
	Description    string // markdown
	Category       string // category code
	TargetAudience string
	WelcomeMessage string // markdown
	PlanID         string
	PlanName       string // denormalized from the plan at creation
	PlanPrice      int
	PlanPeriod     string
	Status         string
	CreatedBy      string
	CreatedAt      time.Time
}

// Validate checks if the Community has valid data.
// PRE: Community struct is populated
// POST: Returns nil if valid, error otherwise
func (c *Community) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !namePattern.MatchString(c.Name) {
		return ErrInvalidName
	}
	if strings.TrimSpace(c.Description) == "" {
		return ErrEmptyDescription
	}
	if _, ok := CategoryLabels[c.Category]; !ok {
		return ErrInvalidCategory
	}
	if c.PlanID == "" {
		return ErrEmptyPlan
	}
	return nil
}

// CategoryLabel returns the display label for the community's category.
// INVARIANT: Community fields are not mutated
func (c *Community) CategoryLabel() string {
	if label, ok := CategoryLabels[c.Category]; ok {
		return label
	}
	return c.Category
}

// Slugify derives a subdomain-safe name from a display name. Characters
// outside [a-z0-9] collapse into single hyphens.
func Slugify(displayName string) string {
	lower := strings.ToLower(strings.TrimSpace(displayName))
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
