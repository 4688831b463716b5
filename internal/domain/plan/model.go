package plan

import (
	"errors"
	"strings"
)

// Billing period constants.
const (
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("plan name cannot be empty")
	ErrNegativePrice  = errors.New("plan price cannot be negative")
	ErrInvalidPeriod  = errors.New("plan period must be monthly or yearly")
	ErrInvalidLimits  = errors.New("plan limits must be positive")
	ErrPlanNotFound   = errors.New("plan not found in catalog")
	ErrEmptyCatalog   = errors.New("plan catalog is empty")
)

// Plan is a subscription tier offered to communities. The wizard reads
// plans; create/update/delete live in the admin Plans screen.
type Plan struct {
	ID                    string
	Name                  string
	Price                 int // cents per period
	Period                string
	Features              []string // ordered, as rendered
	Limits                string
	MaxAcademies          int
	MaxStudentsPerAcademy int
	Popular               bool
}

// Validate checks if the Plan has valid data.
// PRE: Plan struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Period != PeriodMonthly && p.Period != PeriodYearly {
		return ErrInvalidPeriod
	}
	if p.MaxAcademies < 1 || p.MaxStudentsPerAcademy < 1 {
		return ErrInvalidLimits
	}
	return nil
}

// Catalog is an ordered set of plans as served to the wizard.
type Catalog struct {
	Plans []Plan
	// Degraded is true when the catalog is the hardcoded fallback
	// because the live fetch failed. Informational only; the wizard
	// is never blocked on it.
	Degraded bool
}

// FindByID resolves a plan by id. An empty catalog is reported as its
// own condition: nothing could ever match, which is a different failure
// from a stale plan id.
// INVARIANT: Catalog is not mutated
func (c Catalog) FindByID(id string) (Plan, error) {
	if len(c.Plans) == 0 {
		return Plan{}, ErrEmptyCatalog
	}
	for _, p := range c.Plans {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, ErrPlanNotFound
}

// DefaultCatalog returns the hardcoded three-plan fallback used when
// the live catalog cannot be fetched.
func DefaultCatalog() Catalog {
	return Catalog{
		Degraded: true,
		Plans: []Plan{
			{
				ID:     "starter",
				Name:   "Starter",
				Price:  2900,
				Period: PeriodMonthly,
				Features: []string{
					"1 academy",
					"Up to 50 students",
					"Community discovery listing",
					"Email support",
				},
				Limits:                "1 academy, 50 students",
				MaxAcademies:          1,
				MaxStudentsPerAcademy: 50,
			},
			{
				ID:     "growth",
				Name:   "Growth",
				Price:  7900,
				Period: PeriodMonthly,
				Features: []string{
					"5 academies",
					"Up to 500 students per academy",
					"Custom welcome pages",
					"Priority support",
				},
				Limits:                "5 academies, 500 students each",
				MaxAcademies:          5,
				MaxStudentsPerAcademy: 500,
				Popular:               true,
			},
			{
				ID:     "scale",
				Name:   "Scale",
				Price:  19900,
				Period: PeriodMonthly,
				Features: []string{
					"Unlimited academies",
					"Up to 10000 students per academy",
					"Dedicated onboarding",
					"Phone support",
				},
				Limits:                "unlimited academies",
				MaxAcademies:          1000,
				MaxStudentsPerAcademy: 10000,
			},
		},
	}
}

// CatalogOrDefault returns the fetched catalog on success and the
// hardcoded fallback on error. The degraded path is an explicit branch,
// not a swallowed failure.
func CatalogOrDefault(plans []Plan, err error) Catalog {
	if err != nil || len(plans) == 0 {
		return DefaultCatalog()
	}
	return Catalog{Plans: plans}
}
