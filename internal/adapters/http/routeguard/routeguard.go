// Package routeguard decides, for a requested path and the current
// session, whether to render, redirect to login, redirect to a neutral
// landing, or show a 404. The decision function is pure apart from the
// community-name lookup, which is an injected collaborator.
package routeguard

import (
	"context"
	"net/url"
	"strings"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/account"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/community"
)

// Outcome is the kind of decision the guard produces.
type Outcome int

// Guard outcomes. RedirectLogin means "not authenticated";
// RedirectHome means "authenticated but not authorized" — the two are
// deliberately distinct destinations.
const (
	Render Outcome = iota
	RedirectLogin
	RedirectHome
	NotFound
)

// HomePath is the neutral landing for authorized-but-wrong-role users.
const HomePath = "/discovery"

// LoginPath is where unauthenticated users are sent.
const LoginPath = "/login"

// Decision carries the outcome and, for redirects, the target location.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Route declares a guarded path prefix and the roles allowed to enter.
// An empty AllowedRoles list means the route is public.
type Route struct {
	Prefix       string
	AllowedRoles []string
}

// DefaultTable is the static route configuration for the console: the
// guard never computes permissions, it only reads this table.
var DefaultTable = []Route{
	{Prefix: "/login"},
	{Prefix: "/discovery"},
	{Prefix: "/create-community"},
	{Prefix: "/community-user-signup"},
	{Prefix: "/community-user-login"},
	{Prefix: "/dashboard", AllowedRoles: []string{account.RoleAdmin, account.RoleUser}},
	{Prefix: "/academies", AllowedRoles: []string{account.RoleAdmin}},
	{Prefix: "/plans", AllowedRoles: []string{account.RoleAdmin}},
	{Prefix: "/users", AllowedRoles: []string{account.RoleAdmin}},
}

// communityScopes maps the second segment of community-scoped paths to
// allowed roles.
var communityScopes = map[string][]string{
	"admin":   {account.RoleAdmin},
	"student": {account.RoleAdmin, account.RoleUser},
}

// CommunityLookup resolves a community slug. The guard treats any
// lookup failure as terminal for the navigation.
type CommunityLookup interface {
	GetByName(ctx context.Context, name string) (community.Community, error)
}

// Guard evaluates navigation requests against the route table.
type Guard struct {
	table  []Route
	lookup CommunityLookup
}

// New creates a Guard over the default table.
func New(lookup CommunityLookup) *Guard {
	return &Guard{table: DefaultTable, lookup: lookup}
}

// NewWithTable creates a Guard over a custom table, for tests.
func NewWithTable(table []Route, lookup CommunityLookup) *Guard {
	return &Guard{table: table, lookup: lookup}
}

// CanAccess reports whether a role is allowed on a route config.
// INVARIANT: pure
func CanAccess(role string, rt Route) bool {
	if len(rt.AllowedRoles) == 0 {
		return true
	}
	for _, allowed := range rt.AllowedRoles {
		if role == allowed {
			return true
		}
	}
	return false
}

// Evaluate decides how to handle the requested path for the current
// session. authenticated=false with any role means no session at all.
// PRE: path starts with '/'
// POST: Returns exactly one decision; no retries on lookup failure
func (g *Guard) Evaluate(ctx context.Context, path string, authenticated bool, role string) Decision {
	if path == "/" {
		return Decision{Outcome: Render}
	}

	if rt, ok := g.match(path); ok {
		return g.decide(rt, path, authenticated, role)
	}

	if slug, scope, ok := communityScoped(path); ok {
		rt := Route{Prefix: path, AllowedRoles: communityScopes[scope]}
		d := g.decide(rt, path, authenticated, role)
		if d.Outcome != Render {
			return d
		}
		// The community segment must resolve to a real community
		// before the view renders.
		if _, err := g.lookup.GetByName(ctx, slug); err != nil {
			return Decision{Outcome: NotFound}
		}
		return Decision{Outcome: Render}
	}

	return Decision{Outcome: NotFound}
}

func (g *Guard) match(path string) (Route, bool) {
	for _, rt := range g.table {
		if path == rt.Prefix || strings.HasPrefix(path, rt.Prefix+"/") {
			return rt, true
		}
	}
	return Route{}, false
}

func (g *Guard) decide(rt Route, path string, authenticated bool, role string) Decision {
	if len(rt.AllowedRoles) == 0 {
		return Decision{Outcome: Render}
	}
	if !authenticated {
		// Preserve the requested path for post-login return.
		return Decision{Outcome: RedirectLogin, Location: LoginPath + "?next=" + url.QueryEscape(path)}
	}
	if !CanAccess(role, rt) {
		return Decision{Outcome: RedirectHome, Location: HomePath}
	}
	return Decision{Outcome: Render}
}

// communityScoped extracts (slug, scope) from paths shaped like
// /{communityName}/admin/... or /{communityName}/student/...
func communityScoped(path string) (slug, scope string, ok bool) {
	parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 3)
	if len(parts) < 2 {
		return "", "", false
	}
	if _, known := communityScopes[parts[1]]; !known {
		return "", "", false
	}
	return parts[0], parts[1], true
}
