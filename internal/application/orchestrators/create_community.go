package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	planStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/plan"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/community"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/plan"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/wizard"

	"github.com/google/uuid"
)

// CommunityStoreForCreate defines the store interface needed by CreateCommunity.
type CommunityStoreForCreate interface {
	GetByName(ctx context.Context, name string) (community.Community, error)
	Save(ctx context.Context, c community.Community) error
}

// PlanStoreForCreate defines the store interface needed by CreateCommunity.
type PlanStoreForCreate interface {
	List(ctx context.Context, filter planStore.ListFilter) ([]plan.Plan, error)
}

// CreateCommunityInput carries the completed wizard draft.
type CreateCommunityInput struct {
	Draft     wizard.Draft
	CreatedBy string
}

// CreateCommunityResult carries the outcome of a community launch.
type CreateCommunityResult struct {
	CommunityID string
	Name        string
	Degraded    bool
}

// CreateCommunityDeps holds dependencies for CreateCommunity.
type CreateCommunityDeps struct {
	CommunityStore CommunityStoreForCreate
	PlanStore      PlanStoreForCreate
}

var ErrCommunityNameTaken = errors.New("a community with this name already exists")

// ExecuteCreateCommunity validates a completed wizard draft server-side
// and launches the community. The plan catalog is re-fetched here so
// the denormalized plan fields reflect the catalog at launch time; if
// the fetch fails the hardcoded fallback keeps the launch available.
// PRE: Draft came from a wizard at the review step
// POST: On success an active community exists with resolved plan fields
// INVARIANT: Every step gate is re-checked; no payload skips a gate
func ExecuteCreateCommunity(ctx context.Context, input CreateCommunityInput, deps CreateCommunityDeps) (CreateCommunityResult, error) {
	plans, err := deps.PlanStore.List(ctx, planStore.ListFilter{})
	catalog := plan.CatalogOrDefault(plans, err)
	if catalog.Degraded {
		slog.Warn("event", "event", "plan_catalog_degraded", "error", err)
	}

	payload, err := wizard.BuildPayload(input.Draft, catalog)
	if err != nil {
		return CreateCommunityResult{}, err
	}

	if _, err := deps.CommunityStore.GetByName(ctx, payload.Name); err == nil {
		return CreateCommunityResult{}, ErrCommunityNameTaken
	} else if !errors.Is(err, community.ErrNotFound) {
		return CreateCommunityResult{}, err
	}

	c := community.Community{
		ID:             uuid.New().String(),
		Name:           payload.Name,
		DisplayName:    payload.DisplayName,
		Description:    payload.Description,
		Category:       payload.Category,
		TargetAudience: payload.TargetAudience,
		WelcomeMessage: payload.WelcomeMessage,
		PlanID:         payload.PlanID,
		PlanName:       payload.PlanName,
		PlanPrice:      payload.PlanPrice,
		PlanPeriod:     payload.PlanPeriod,
		Status:         community.StatusActive,
		CreatedBy:      input.CreatedBy,
		CreatedAt:      time.Now(),
	}

	if err := c.Validate(); err != nil {
		return CreateCommunityResult{}, err
	}

	if err := deps.CommunityStore.Save(ctx, c); err != nil {
		return CreateCommunityResult{}, err
	}

	slog.Info("event", "event", "community_launched", "name", c.Name, "plan", c.PlanID, "degraded_catalog", catalog.Degraded)

	return CreateCommunityResult{
		CommunityID: c.ID,
		Name:        c.Name,
		Degraded:    catalog.Degraded,
	}, nil
}
