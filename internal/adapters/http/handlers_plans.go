package web

import (
	"net/http"
	"strings"

	planStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/plan"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/listutil"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/plan"
)

// planJSON is the wire shape for a plan in the admin console.
type planJSON struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Price                 int      `json:"price"`
	Period                string   `json:"period"`
	Features              []string `json:"features"`
	Limits                string   `json:"limits"`
	MaxAcademies          int      `json:"maxAcademies"`
	MaxStudentsPerAcademy int      `json:"maxStudentsPerAcademy"`
	Popular               bool     `json:"popular"`
}

func toPlanJSON(p plan.Plan) planJSON {
	return planJSON{
		ID:                    p.ID,
		Name:                  p.Name,
		Price:                 p.Price,
		Period:                p.Period,
		Features:              p.Features,
		Limits:                p.Limits,
		MaxAcademies:          p.MaxAcademies,
		MaxStudentsPerAcademy: p.MaxStudentsPerAcademy,
		Popular:               p.Popular,
	}
}

// planRequest is the create/update body shared by POST and PUT.
type planRequest struct {
	Name                  string   `json:"name"`
	Price                 int      `json:"price"`
	Period                string   `json:"period"`
	Features              []string `json:"features"`
	Limits                string   `json:"limits"`
	MaxAcademies          int      `json:"maxAcademies"`
	MaxStudentsPerAcademy int      `json:"maxStudentsPerAcademy"`
	Popular               bool     `json:"popular"`
}

func (req planRequest) apply(p *plan.Plan) {
	p.Name = req.Name
	p.Price = req.Price
	p.Period = req.Period
	p.Features = req.Features
	p.Limits = req.Limits
	p.MaxAcademies = req.MaxAcademies
	p.MaxStudentsPerAcademy = req.MaxStudentsPerAcademy
	p.Popular = req.Popular
}

// handlePlans handles GET (list) and POST (create) for /api/plans.
func handlePlans(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	ctx := r.Context()

	switch r.Method {
	case "GET":
		lp := listutil.ParseListParams(r.URL.Query(), []string{"period"})
		plans, err := stores.PlanStore.List(ctx, planStore.ListFilter{
			Period: lp.Filters["period"],
		})
		if err != nil {
			internalError(w, err)
			return
		}
		items := make([]planJSON, 0, len(plans))
		for _, p := range plans {
			items = append(items, toPlanJSON(p))
		}
		writeJSON(w, http.StatusOK, map[string]any{"plans": items})

	case "POST":
		var req planRequest
		if err := strictDecode(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		p := plan.Plan{ID: generateID()}
		req.apply(&p)
		if err := p.Validate(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := stores.PlanStore.Save(ctx, p); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPlanJSON(p))

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handlePlanByID handles GET, PUT and DELETE for /api/plans/{id}.
// Deletion requires the confirmation phrase to match the plan name.
func handlePlanByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/plans/")
	if id == "" || strings.Contains(id, "/") {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	ctx := r.Context()
	p, err := stores.PlanStore.GetByID(ctx, id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "plan not found")
		return
	}

	switch r.Method {
	case "GET":
		writeJSON(w, http.StatusOK, toPlanJSON(p))

	case "PUT":
		var req planRequest
		if err := strictDecode(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		req.apply(&p)
		if err := p.Validate(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := stores.PlanStore.Save(ctx, p); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPlanJSON(p))

	case "DELETE":
		var req struct {
			Confirm string `json:"confirm"`
		}
		if err := strictDecode(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if req.Confirm != p.Name {
			writeJSONError(w, http.StatusBadRequest, "confirmation phrase does not match the plan name")
			return
		}
		if err := stores.PlanStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
