package projections

import (
	"context"
	"strings"
	"testing"

	communityStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/community"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/community"
)

// memDiscoveryStore applies the same filter semantics as the SQLite
// store so the projection can be tested without a database.
type memDiscoveryStore struct {
	communities []community.Community
}

func (s *memDiscoveryStore) matches(c community.Community, filter communityStore.ListFilter) bool {
	if filter.Status != "" && c.Status != filter.Status {
		return false
	}
	if filter.Category != "" && c.Category != filter.Category {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(c.DisplayName), needle) &&
			!strings.Contains(strings.ToLower(c.Description), needle) {
			return false
		}
	}
	return true
}

func (s *memDiscoveryStore) List(_ context.Context, filter communityStore.ListFilter) ([]community.Community, error) {
	var out []community.Community
	for _, c := range s.communities {
		if s.matches(c, filter) {
			out = append(out, c)
		}
	}
	if filter.Offset > len(out) {
		return nil, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *memDiscoveryStore) Count(_ context.Context, filter communityStore.ListFilter) (int, error) {
	n := 0
	for _, c := range s.communities {
		if s.matches(c, filter) {
			n++
		}
	}
	return n, nil
}

func discoveryFixture() *memDiscoveryStore {
	return &memDiscoveryStore{communities: []community.Community{
		{Name: "crypto-manji", DisplayName: "Crypto Manji", Description: "Trading together", Category: community.CategoryTechnology, Status: community.StatusActive, PlanName: "Growth", PlanPrice: 7900, PlanPeriod: "monthly"},
		{Name: "yoga-flow", DisplayName: "Yoga Flow", Description: "Daily practice", Category: community.CategoryFitness, Status: community.StatusActive, PlanName: "Starter", PlanPrice: 2900, PlanPeriod: "monthly"},
		{Name: "old-guild", DisplayName: "Old Guild", Description: "Gone quiet", Category: community.CategoryTechnology, Status: community.StatusArchived},
	}}
}

func TestQueryDiscovery_ExcludesArchived(t *testing.T) {
	result, err := QueryDiscovery(context.Background(), DiscoveryInput{}, DiscoveryDeps{CommunityStore: discoveryFixture()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 active communities, got %d", len(result.Items))
	}
	for _, item := range result.Items {
		if item.Name == "old-guild" {
			t.Error("archived community must not appear in discovery")
		}
	}
	if result.PageInfo.Total != 2 {
		t.Errorf("expected total 2, got %d", result.PageInfo.Total)
	}
}

func TestQueryDiscovery_CategoryFilter(t *testing.T) {
	result, err := QueryDiscovery(context.Background(), DiscoveryInput{
		Category: community.CategoryFitness,
	}, DiscoveryDeps{CommunityStore: discoveryFixture()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].Name != "yoga-flow" {
		t.Errorf("expected only yoga-flow, got %v", result.Items)
	}
	if result.Items[0].CategoryLabel != "Fitness & Sports" {
		t.Errorf("expected resolved category label, got %q", result.Items[0].CategoryLabel)
	}
}

func TestQueryDiscovery_Search(t *testing.T) {
	result, err := QueryDiscovery(context.Background(), DiscoveryInput{
		Search: "trading",
	}, DiscoveryDeps{CommunityStore: discoveryFixture()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].Name != "crypto-manji" {
		t.Errorf("expected only crypto-manji, got %v", result.Items)
	}
}

func TestQueryDiscovery_Pagination(t *testing.T) {
	store := discoveryFixture()
	result, err := QueryDiscovery(context.Background(), DiscoveryInput{
		Page:    2,
		PerPage: 1,
	}, DiscoveryDeps{CommunityStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item on page 2, got %d", len(result.Items))
	}
	if result.PageInfo.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", result.PageInfo.TotalPages)
	}
}
