package plan_test

import (
	"errors"
	"testing"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/plan"
)

func validPlan() plan.Plan {
	return plan.Plan{
		ID:                    "p1",
		Name:                  "Starter",
		Price:                 2900,
		Period:                plan.PeriodMonthly,
		Features:              []string{"1 academy"},
		MaxAcademies:          1,
		MaxStudentsPerAcademy: 50,
	}
}

// TestPlan_Validate tests validation of Plan.
func TestPlan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*plan.Plan)
		wantErr error
	}{
		{name: "valid plan", edit: func(p *plan.Plan) {}},
		{name: "empty name", edit: func(p *plan.Plan) { p.Name = " " }, wantErr: plan.ErrEmptyName},
		{name: "negative price", edit: func(p *plan.Plan) { p.Price = -1 }, wantErr: plan.ErrNegativePrice},
		{name: "free plan allowed", edit: func(p *plan.Plan) { p.Price = 0 }},
		{name: "bad period", edit: func(p *plan.Plan) { p.Period = "weekly" }, wantErr: plan.ErrInvalidPeriod},
		{name: "zero academies", edit: func(p *plan.Plan) { p.MaxAcademies = 0 }, wantErr: plan.ErrInvalidLimits},
		{name: "zero students", edit: func(p *plan.Plan) { p.MaxStudentsPerAcademy = 0 }, wantErr: plan.ErrInvalidLimits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPlan()
			tt.edit(&p)
			if err := p.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestDefaultCatalog tests the fallback catalog shape: exactly three
// plans, all valid, flagged degraded.
func TestDefaultCatalog(t *testing.T) {
	c := plan.DefaultCatalog()
	if len(c.Plans) != 3 {
		t.Fatalf("fallback catalog has %d plans, want 3", len(c.Plans))
	}
	if !c.Degraded {
		t.Error("fallback catalog not flagged degraded")
	}
	for _, p := range c.Plans {
		if err := p.Validate(); err != nil {
			t.Errorf("fallback plan %s invalid: %v", p.ID, err)
		}
	}
}

// TestCatalogOrDefault tests the explicit degraded branch.
func TestCatalogOrDefault(t *testing.T) {
	live := []plan.Plan{validPlan()}

	c := plan.CatalogOrDefault(live, nil)
	if c.Degraded {
		t.Error("live catalog flagged degraded")
	}
	if len(c.Plans) != 1 || c.Plans[0].ID != "p1" {
		t.Errorf("live catalog not preserved: %+v", c.Plans)
	}

	c = plan.CatalogOrDefault(nil, errors.New("connection refused"))
	if !c.Degraded || len(c.Plans) != 3 {
		t.Errorf("fetch failure did not fall back: degraded=%v plans=%d", c.Degraded, len(c.Plans))
	}

	// An empty successful fetch is also degraded — the wizard must
	// never be left with nothing to select.
	c = plan.CatalogOrDefault(nil, nil)
	if !c.Degraded || len(c.Plans) != 3 {
		t.Errorf("empty fetch did not fall back: degraded=%v plans=%d", c.Degraded, len(c.Plans))
	}
}

// TestCatalog_FindByID tests plan resolution.
func TestCatalog_FindByID(t *testing.T) {
	c := plan.DefaultCatalog()
	p, err := c.FindByID("growth")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if p.Name != "Growth" || !p.Popular {
		t.Errorf("unexpected plan: %+v", p)
	}
	if _, err := c.FindByID("nope"); !errors.Is(err, plan.ErrPlanNotFound) {
		t.Errorf("missing id: err = %v", err)
	}

	var empty plan.Catalog
	if _, err := empty.FindByID("growth"); !errors.Is(err, plan.ErrEmptyCatalog) {
		t.Errorf("empty catalog: err = %v", err)
	}
}
