package web

import (
	"net/http"
	"strings"
	"time"

	academyStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/academy"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/listutil"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/academy"
)

// academyJSON is the wire shape for an academy.
type academyJSON struct {
	ID           string    `json:"id"`
	CommunityID  string    `json:"communityId"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactEmail string    `json:"contactEmail"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toAcademyJSON(a academy.Academy) academyJSON {
	return academyJSON{
		ID:           a.ID,
		CommunityID:  a.CommunityID,
		Name:         a.Name,
		Address:      a.Address,
		ContactEmail: a.ContactEmail,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
	}
}

// handleAcademies handles GET (list) and POST (create) for /api/academies.
func handleAcademies(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	ctx := r.Context()

	switch r.Method {
	case "GET":
		lp := listutil.ParseListParams(r.URL.Query(), []string{"status", "communityId"})
		filter := academyStore.ListFilter{
			Status:      lp.Filters["status"],
			CommunityID: lp.Filters["communityId"],
			Search:      lp.Search,
		}

		total, err := stores.AcademyStore.Count(ctx, filter)
		if err != nil {
			internalError(w, err)
			return
		}
		info := listutil.NewPageInfo(lp.Page, lp.PerPage, total)
		filter.Limit = info.PerPage
		filter.Offset = info.Offset()

		academies, err := stores.AcademyStore.List(ctx, filter)
		if err != nil {
			internalError(w, err)
			return
		}

		items := make([]academyJSON, 0, len(academies))
		for _, a := range academies {
			items = append(items, toAcademyJSON(a))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"academies": items,
			"pageInfo":  info,
		})

	case "POST":
		var req struct {
			CommunityID  string `json:"communityId"`
			Name         string `json:"name"`
			Address      string `json:"address"`
			ContactEmail string `json:"contactEmail"`
		}
		if err := strictDecode(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		a := academy.Academy{
			ID:           generateID(),
			CommunityID:  req.CommunityID,
			Name:         req.Name,
			Address:      req.Address,
			ContactEmail: req.ContactEmail,
			Status:       academy.StatusActive,
			CreatedAt:    timeNow(),
		}
		if err := a.Validate(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := stores.AcademyStore.Save(ctx, a); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAcademyJSON(a))

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleAcademyByID handles GET, PUT and DELETE for /api/academies/{id}.
// Deletion requires the confirmation phrase to match the academy name
// exactly.
func handleAcademyByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/academies/")
	if id == "" || strings.Contains(id, "/") {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	ctx := r.Context()
	a, err := stores.AcademyStore.GetByID(ctx, id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "academy not found")
		return
	}

	switch r.Method {
	case "GET":
		writeJSON(w, http.StatusOK, toAcademyJSON(a))

	case "PUT":
		var req struct {
			Name         string `json:"name"`
			Address      string `json:"address"`
			ContactEmail string `json:"contactEmail"`
			Status       string `json:"status"`
		}
		if err := strictDecode(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		a.Name = req.Name
		a.Address = req.Address
		a.ContactEmail = req.ContactEmail
		a.Status = req.Status
		if err := a.Validate(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := stores.AcademyStore.Save(ctx, a); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAcademyJSON(a))

	case "DELETE":
		var req struct {
			Confirm string `json:"confirm"`
		}
		if err := strictDecode(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if req.Confirm != a.Name {
			writeJSONError(w, http.StatusBadRequest, "confirmation phrase does not match the academy name")
			return
		}
		if err := stores.AcademyStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
