package web

import (
	"crypto/rand"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/email"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/http/middleware"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/http/routeguard"
	academyStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/academy"
	accountStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/account"
	communityStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/community"
	userStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/communityuser"
	planStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/plan"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/config"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore       accountStore.Store
	CommunityUserStore userStore.Store
	CommunityStore     communityStore.Store
	PlanStore          planStore.Store
	AcademyStore       academyStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance (set by NewMux)
var sessions middleware.SessionStore

// Global route guard instance (set by NewMux)
var guard *routeguard.Guard

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailReplyTo string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, replyTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
}

// NewMux wires HTTP handlers for the app.
func NewMux(cfg *config.Config, staticDir string, s *Stores, sessionStore middleware.SessionStore) http.Handler {
	stores = s
	sessions = sessionStore
	guard = routeguard.New(s.CommunityStore)
	middleware.SecureCookies = cfg.IsProduction()
	if cfg.RatePerSecond > 0 {
		RateLimitPerSecond = cfg.RatePerSecond
	}

	mux := http.NewServeMux()
	registerRoutes(mux)
	mux.HandleFunc("/", pageHandler(staticDir))

	csrfKey := cfg.CSRFKey
	if len(csrfKey) == 0 {
		csrfKey = make([]byte, 32)
		if _, err := rand.Read(csrfKey); err != nil {
			log.Fatalf("failed to generate CSRF key: %v", err)
		}
		log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set COMMUNITY_CSRF_KEY for production.")
	}

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: SecurityHeaders -> CSRF -> Auth -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, cfg.IsProduction(), nil),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}

// registerRoutes maps URL paths to handlers. Method branching happens
// inside each handler.
func registerRoutes(mux *http.ServeMux) {
	// Console sessions
	mux.HandleFunc("/api/login", handleLogin)
	mux.HandleFunc("/api/logout", handleLogout)
	mux.HandleFunc("/api/change-password", handleChangePassword)
	mux.HandleFunc("/api/session", handleSession)

	// Community user lifecycle (public)
	mux.HandleFunc("/api/community-user/signup", handleCommunityUserSignup)
	mux.HandleFunc("/api/community-user/login", handleCommunityUserLogin)
	mux.HandleFunc("/api/community-user/status/", handleCommunityUserStatus)

	// Approval queue (admin)
	mux.HandleFunc("/api/community-users", handleCommunityUsers)
	mux.HandleFunc("/api/community-users/", handleCommunityUserDecide)

	// Communities and discovery
	mux.HandleFunc("/api/discovery", handleDiscovery)
	mux.HandleFunc("/api/communities", handleCommunities)
	mux.HandleFunc("/api/communities/", handleCommunityByName)
	mux.HandleFunc("/api/plans/public", handlePublicPlans)
	mux.HandleFunc("/api/dashboard", handleDashboard)

	// Admin CRUD
	mux.HandleFunc("/api/academies", handleAcademies)
	mux.HandleFunc("/api/academies/", handleAcademyByID)
	mux.HandleFunc("/api/plans", handlePlans)
	mux.HandleFunc("/api/plans/", handlePlanByID)
	mux.HandleFunc("/api/users", handleUsers)
	mux.HandleFunc("/api/users/", handleUserByID)
}

// pageHandler serves the console pages and the SPA's static assets.
// Files that exist under staticDir resolve before the guard runs, so
// bundle requests never hit the route table. The guard decides page
// routes only; a Render outcome hands the browser the SPA shell and
// client-side routing takes over from there.
func pageHandler(staticDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(staticDir))
	return func(w http.ResponseWriter, r *http.Request) {
		if p := filepath.Clean(r.URL.Path); p != "/" {
			if info, err := os.Stat(filepath.Join(staticDir, p)); err == nil && !info.IsDir() {
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		sess, authenticated := middleware.GetSessionFromContext(r.Context())
		d := guard.Evaluate(r.Context(), r.URL.Path, authenticated, sess.Role)
		switch d.Outcome {
		case routeguard.RedirectLogin, routeguard.RedirectHome:
			http.Redirect(w, r, d.Location, http.StatusSeeOther)
			return
		case routeguard.NotFound:
			http.NotFound(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	}
}
