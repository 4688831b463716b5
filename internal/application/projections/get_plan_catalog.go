package projections

import (
	"context"

	planStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/plan"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/plan"
)

// PlanCatalogStore defines the plan store interface for the public catalog.
type PlanCatalogStore interface {
	List(ctx context.Context, filter planStore.ListFilter) ([]plan.Plan, error)
}

// QueryPlanCatalog returns the plan catalog for the wizard's plan step.
// A failed or empty fetch yields the hardcoded fallback with Degraded
// set; the wizard is never blocked on the plans table.
// PRE: none
// POST: the returned catalog always has at least one plan
func QueryPlanCatalog(ctx context.Context, store PlanCatalogStore) plan.Catalog {
	plans, err := store.List(ctx, planStore.ListFilter{})
	return plan.CatalogOrDefault(plans, err)
}
