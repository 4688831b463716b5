package orchestrators

import (
	"context"
	"log/slog"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/plan"
)

// PlanStoreForSeed defines the store interface needed by SeedPlans.
type PlanStoreForSeed interface {
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, p plan.Plan) error
}

// ExecuteSeedPlans writes the default plan catalog on an empty store.
// Runs at startup; a store with any plans at all is left untouched so
// admin edits survive restarts.
// PRE: PlanStore is reachable
// POST: The store contains at least one plan
func ExecuteSeedPlans(ctx context.Context, store PlanStoreForSeed) error {
	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, p := range plan.DefaultCatalog().Plans {
		if err := store.Save(ctx, p); err != nil {
			return err
		}
	}
	slog.Info("event", "event", "plans_seeded", "count", len(plan.DefaultCatalog().Plans))
	return nil
}
