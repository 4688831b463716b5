package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	accountStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/account"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/listutil"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/orchestrators"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/account"
)

// accountJSON is the wire shape for a console account. The password
// hash never leaves the server.
type accountJSON struct {
	ID                     string    `json:"id"`
	Email                  string    `json:"email"`
	Name                   string    `json:"name"`
	Role                   string    `json:"role"`
	ProfileComplete        bool      `json:"profileComplete"`
	PasswordChangeRequired bool      `json:"passwordChangeRequired"`
	CreatedAt              time.Time `json:"createdAt"`
}

func toAccountJSON(a account.Account) accountJSON {
	return accountJSON{
		ID:                     a.ID,
		Email:                  a.Email,
		Name:                   a.Name,
		Role:                   a.Role,
		ProfileComplete:        a.ProfileComplete,
		PasswordChangeRequired: a.PasswordChangeRequired,
		CreatedAt:              a.CreatedAt,
	}
}

// handleUsers handles GET (list) and POST (create) for /api/users.
func handleUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	ctx := r.Context()

	switch r.Method {
	case "GET":
		lp := listutil.ParseListParams(r.URL.Query(), []string{"role"})
		filter := accountStore.ListFilter{
			Role:   lp.Filters["role"],
			Search: lp.Search,
		}

		total, err := stores.AccountStore.Count(ctx, filter)
		if err != nil {
			internalError(w, err)
			return
		}
		info := listutil.NewPageInfo(lp.Page, lp.PerPage, total)
		filter.Limit = info.PerPage
		filter.Offset = info.Offset()

		accounts, err := stores.AccountStore.List(ctx, filter)
		if err != nil {
			internalError(w, err)
			return
		}

		items := make([]accountJSON, 0, len(accounts))
		for _, a := range accounts {
			items = append(items, toAccountJSON(a))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"users":    items,
			"pageInfo": info,
		})

	case "POST":
		var req struct {
			Email    string `json:"email"`
			Name     string `json:"name"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := strictDecode(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		id, err := orchestrators.ExecuteCreateAccount(ctx, orchestrators.CreateAccountInput{
			Email:    req.Email,
			Name:     req.Name,
			Password: req.Password,
			Role:     req.Role,
			// Admin-created accounts must rotate the password on first login.
			PasswordChangeRequired: true,
		}, orchestrators.CreateAccountDeps{AccountStore: stores.AccountStore})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, orchestrators.ErrEmailAlreadyExists) {
				status = http.StatusConflict
			}
			writeJSONError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleUserByID handles GET, PUT and DELETE for /api/users/{id}, and
// POST /api/users/{id}/role for role changes. Deletion requires the
// confirmation phrase to match the account email; an admin cannot
// delete their own account.
func handleUserByID(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireAdmin(w, r)
	if !ok {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/users/")
	id, action, hasAction := strings.Cut(rest, "/")
	if id == "" {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	ctx := r.Context()
	a, err := stores.AccountStore.GetByID(ctx, id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "user not found")
		return
	}

	if hasAction {
		if action == "role" && r.Method == "POST" {
			handleUserRoleChange(w, r, a)
			return
		}
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case "GET":
		writeJSON(w, http.StatusOK, toAccountJSON(a))

	case "PUT":
		var req struct {
			Name            string `json:"name"`
			ProfileComplete bool   `json:"profileComplete"`
		}
		if err := strictDecode(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		a.Name = req.Name
		a.ProfileComplete = req.ProfileComplete
		if err := a.Validate(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := stores.AccountStore.Save(ctx, a); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAccountJSON(a))

	case "DELETE":
		if a.ID == sess.AccountID {
			writeJSONError(w, http.StatusBadRequest, "you cannot delete your own account")
			return
		}

		var req struct {
			Confirm string `json:"confirm"`
		}
		if err := strictDecode(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if req.Confirm != a.Email {
			writeJSONError(w, http.StatusBadRequest, "confirmation phrase does not match the account email")
			return
		}
		if err := stores.AccountStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func handleUserRoleChange(w http.ResponseWriter, r *http.Request, a account.Account) {
	var req struct {
		Role string `json:"role"`
	}
	if err := strictDecode(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	a.Role = req.Role
	if err := a.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := stores.AccountStore.Save(r.Context(), a); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountJSON(a))
}
