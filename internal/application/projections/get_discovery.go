// Package projections assembles read models for the console and the
// public surfaces. Projections never write; all mutation goes through
// the orchestrators.
package projections

import (
	"context"

	communityStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/community"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/listutil"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/community"
)

// DiscoveryCommunityStore defines the community store interface for discovery.
type DiscoveryCommunityStore interface {
	List(ctx context.Context, filter communityStore.ListFilter) ([]community.Community, error)
	Count(ctx context.Context, filter communityStore.ListFilter) (int, error)
}

// DiscoveryInput carries the public listing parameters.
type DiscoveryInput struct {
	Search   string
	Category string
	Page     int
	PerPage  int
}

// DiscoveryItem is one community card on the discovery page. The
// description stays markdown here; rendering happens at the edge.
type DiscoveryItem struct {
	Name           string `json:"name"`
	DisplayName    string `json:"displayName"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	CategoryLabel  string `json:"categoryLabel"`
	TargetAudience string `json:"targetAudience"`
	PlanName       string `json:"planName"`
	PlanPrice      int    `json:"planPrice"`
	PlanPeriod     string `json:"planPeriod"`
}

// DiscoveryResult is the paginated discovery listing.
type DiscoveryResult struct {
	Items    []DiscoveryItem
	PageInfo listutil.PageInfo
}

// DiscoveryDeps holds dependencies for the discovery projection.
type DiscoveryDeps struct {
	CommunityStore DiscoveryCommunityStore
}

// QueryDiscovery lists active communities for the public discovery
// page. Archived communities never appear regardless of filters.
// PRE: none; invalid pagination is clamped
// POST: returns at most PerPage items plus accurate page metadata
func QueryDiscovery(ctx context.Context, input DiscoveryInput, deps DiscoveryDeps) (DiscoveryResult, error) {
	filter := communityStore.ListFilter{
		Status:   community.StatusActive,
		Search:   input.Search,
		Category: input.Category,
	}

	total, err := deps.CommunityStore.Count(ctx, filter)
	if err != nil {
		return DiscoveryResult{}, err
	}

	info := listutil.NewPageInfo(input.Page, input.PerPage, total)
	filter.Limit = info.PerPage
	filter.Offset = info.Offset()

	communities, err := deps.CommunityStore.List(ctx, filter)
	if err != nil {
		return DiscoveryResult{}, err
	}

	items := make([]DiscoveryItem, 0, len(communities))
	for _, c := range communities {
		items = append(items, DiscoveryItem{
			Name:           c.Name,
			DisplayName:    c.DisplayName,
			Description:    c.Description,
			Category:       c.Category,
			CategoryLabel:  c.CategoryLabel(),
			TargetAudience: c.TargetAudience,
			PlanName:       c.PlanName,
			PlanPrice:      c.PlanPrice,
			PlanPeriod:     c.PlanPeriod,
		})
	}

	return DiscoveryResult{Items: items, PageInfo: info}, nil
}
