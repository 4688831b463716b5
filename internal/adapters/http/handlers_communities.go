package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/http/middleware"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/listutil"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/orchestrators"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/projections"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/community"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/plan"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/wizard"
)

// discoveryItemJSON is a DiscoveryItem with the markdown description
// rendered for the cards.
type discoveryItemJSON struct {
	projections.DiscoveryItem
	DescriptionHTML string `json:"descriptionHtml"`
}

// handleDiscovery handles GET /api/discovery: the public listing of
// active communities with search, category filter and pagination.
func handleDiscovery(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), []string{"category"})
	result, err := projections.QueryDiscovery(r.Context(), projections.DiscoveryInput{
		Search:   lp.Search,
		Category: lp.Filters["category"],
		Page:     lp.Page,
		PerPage:  lp.PerPage,
	}, projections.DiscoveryDeps{CommunityStore: stores.CommunityStore})
	if err != nil {
		internalError(w, err)
		return
	}

	items := make([]discoveryItemJSON, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, discoveryItemJSON{
			DiscoveryItem:   item,
			DescriptionHTML: renderMarkdown(item.Description),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"communities": items,
		"pageInfo":    result.PageInfo,
	})
}

// handleCommunities handles POST /api/communities: the wizard launch.
// The full draft is re-validated server-side; the steps the browser
// walked through carry no authority.
func handleCommunities(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name           string `json:"name"`
		Description    string `json:"description"`
		Category       string `json:"category"`
		TargetAudience string `json:"targetAudience"`
		SelectedPlanID string `json:"selectedPlanId"`
		WelcomeMessage string `json:"welcomeMessage"`
	}
	if err := strictDecode(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	createdBy := ""
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		createdBy = sess.AccountID
	}

	result, err := orchestrators.ExecuteCreateCommunity(r.Context(), orchestrators.CreateCommunityInput{
		Draft: wizard.Draft{
			Name:           req.Name,
			Description:    req.Description,
			Category:       req.Category,
			TargetAudience: req.TargetAudience,
			SelectedPlanID: req.SelectedPlanID,
			WelcomeMessage: req.WelcomeMessage,
		},
		CreatedBy: createdBy,
	}, orchestrators.CreateCommunityDeps{
		CommunityStore: stores.CommunityStore,
		PlanStore:      stores.PlanStore,
	})
	if err != nil {
		switch {
		case errors.Is(err, orchestrators.ErrCommunityNameTaken):
			writeJSONError(w, http.StatusConflict, err.Error())
		case errors.Is(err, wizard.ErrStepIncomplete),
			errors.Is(err, plan.ErrPlanNotFound),
			errors.Is(err, plan.ErrEmptyCatalog),
			errors.Is(err, community.ErrInvalidCategory):
			writeJSONError(w, http.StatusBadRequest, err.Error())
		default:
			internalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"communityId": result.CommunityID,
		"name":        result.Name,
		"degraded":    result.Degraded,
	})
}

// handleCommunityByName handles GET /api/communities/{name}.
func handleCommunityByName(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/communities/")
	if name == "" || strings.Contains(name, "/") {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	c, err := stores.CommunityStore.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, community.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "community not found")
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"name":               c.Name,
		"displayName":        c.DisplayName,
		"description":        c.Description,
		"descriptionHtml":    renderMarkdown(c.Description),
		"category":           c.Category,
		"categoryLabel":      c.CategoryLabel(),
		"targetAudience":     c.TargetAudience,
		"welcomeMessage":     c.WelcomeMessage,
		"welcomeMessageHtml": renderMarkdown(c.WelcomeMessage),
		"planName":           c.PlanName,
		"planPrice":          c.PlanPrice,
		"planPeriod":         c.PlanPeriod,
		"status":             c.Status,
		"createdAt":          c.CreatedAt,
	})
}

// handlePublicPlans handles GET /api/plans/public: the catalog the
// wizard's plan step renders. Always succeeds; a failed fetch serves
// the hardcoded fallback with degraded set.
func handlePublicPlans(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	catalog := projections.QueryPlanCatalog(r.Context(), stores.PlanStore)

	writeJSON(w, http.StatusOK, map[string]any{
		"plans":    publicPlanList(catalog),
		"degraded": catalog.Degraded,
	})
}

func publicPlanList(catalog plan.Catalog) []map[string]any {
	out := make([]map[string]any, 0, len(catalog.Plans))
	for _, p := range catalog.Plans {
		out = append(out, map[string]any{
			"id":       p.ID,
			"name":     p.Name,
			"price":    p.Price,
			"period":   p.Period,
			"features": p.Features,
			"limits":   p.Limits,
			"popular":  p.Popular,
		})
	}
	return out
}

// handleDashboard handles GET /api/dashboard (admin stat counts).
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if _, ok := requireSession(w, r); !ok {
		return
	}

	stats, err := projections.QueryDashboard(r.Context(), projections.DashboardDeps{
		CommunityStore: stores.CommunityStore,
		AcademyStore:   stores.AcademyStore,
		UserStore:      stores.CommunityUserStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
