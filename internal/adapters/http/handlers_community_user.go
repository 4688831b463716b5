package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/http/middleware"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/listutil"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/orchestrators"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/projections"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/account"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

// handleCommunityUserSignup handles POST /api/community-user/signup.
// Public: anyone may apply; every new application lands pending.
func handleCommunityUserSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		FirstName       string `json:"firstName"`
		LastName        string `json:"lastName"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		AcceptedTerms   bool   `json:"acceptedTerms"`
	}
	if err := strictDecode(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	result, err := orchestrators.ExecuteSignup(r.Context(), orchestrators.SignupInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AcceptedTerms:   req.AcceptedTerms,
	}, orchestrators.SignupDeps{UserStore: stores.CommunityUserStore})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, orchestrators.ErrUserAlreadyExists) {
			status = http.StatusConflict
		}
		writeJSONError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"userId":         result.UserID,
		"email":          result.Email,
		"approvalStatus": result.Status,
	})
}

// handleCommunityUserLogin handles POST /api/community-user/login.
// Correct credentials always authenticate; a session token is issued
// only for approved users. Pending and rejected callers get their
// status back so the frontend can route them to the right screen.
func handleCommunityUserLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := strictDecode(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	result, err := orchestrators.ExecuteCommunityLogin(r.Context(), orchestrators.CommunityLoginInput{
		Email:    req.Email,
		Password: req.Password,
	}, orchestrators.CommunityLoginDeps{UserStore: stores.CommunityUserStore})
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, err.Error())
		return
	}

	user := map[string]any{
		"id":             result.UserID,
		"email":          result.Email,
		"fullName":       result.FullName,
		"approvalStatus": result.ApprovalStatus,
	}

	if result.ApprovalStatus != communityuser.StatusApproved {
		writeJSON(w, http.StatusOK, map[string]any{
			"user": user,
		})
		return
	}

	token, err := sessions.Create(r.Context(), middleware.Session{
		AccountID: result.UserID,
		Email:     result.Email,
		Role:      account.RoleUser,
		CreatedAt: timeNow(),
	})
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

// handleCommunityUserStatus handles GET /api/community-user/status/{email}.
func handleCommunityUserStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	email := strings.TrimPrefix(r.URL.Path, "/api/community-user/status/")
	if email == "" || strings.Contains(email, "/") {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	result, err := orchestrators.ExecuteCheckStatus(r.Context(), email, orchestrators.CheckStatusDeps{
		UserStore: stores.CommunityUserStore,
	})
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "no application found for this email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"email":          result.Email,
		"approvalStatus": result.ApprovalStatus,
	})
}

// handleCommunityUsers handles GET /api/community-users (admin approval queue).
func handleCommunityUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), []string{"status"})
	result, err := projections.QueryApprovalQueue(r.Context(), projections.ApprovalQueueInput{
		Status:  lp.Filters["status"],
		Search:  lp.Search,
		Page:    lp.Page,
		PerPage: lp.PerPage,
	}, projections.ApprovalQueueDeps{UserStore: stores.CommunityUserStore})
	if err != nil {
		if errors.Is(err, communityuser.ErrInvalidStatus) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"entries":  result.Entries,
		"pageInfo": result.PageInfo,
	})
}

// handleCommunityUserDecide handles POST /api/community-users/{id}/decide.
func handleCommunityUserDecide(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sess, ok := requireAdmin(w, r)
	if !ok {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/community-users/")
	userID, action, found := strings.Cut(rest, "/")
	if !found || action != "decide" || userID == "" {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := strictDecode(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	result, err := orchestrators.ExecuteDecideApproval(r.Context(), orchestrators.DecideApprovalInput{
		UserID:  userID,
		Status:  req.Status,
		AdminID: sess.AccountID,
	}, orchestrators.DecideApprovalDeps{
		UserStore: stores.CommunityUserStore,
		Sender:    emailSender,
		From:      emailFromAddress,
		ReplyTo:   emailReplyTo,
	})
	if err != nil {
		switch {
		case errors.Is(err, communityuser.ErrInvalidStatus):
			writeJSONError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, communityuser.ErrAlreadyDecided):
			writeJSONError(w, http.StatusConflict, err.Error())
		default:
			writeJSONError(w, http.StatusNotFound, "community user not found")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"email":          result.Email,
		"approvalStatus": result.ApprovalStatus,
		"emailSent":      result.EmailSent,
	})
}
