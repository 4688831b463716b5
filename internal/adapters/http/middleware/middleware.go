package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/csrf"
)

// RateLimiter throttles API calls per client address using token buckets.
// Static asset requests are never counted; see RateLimit.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	rate      int
	interval  time.Duration
	lastSweep time.Time
}

type bucket struct {
	tokens   int
	refilled time.Time
}

const staleBucketAge = 5 * time.Minute

// NewRateLimiter creates a limiter allowing `rate` requests per `interval`
// from each client address.
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:   make(map[string]*bucket),
		rate:      rate,
		interval:  interval,
		lastSweep: time.Now(),
	}
}

// Allow reports whether a request from addr fits within the rate limit.
// PRE: addr is non-empty
// POST: one token consumed on success; no state change on refusal
func (rl *RateLimiter) Allow(addr string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Sweep stale buckets lazily instead of running a background goroutine.
	if now.Sub(rl.lastSweep) > time.Minute {
		for key, b := range rl.buckets {
			if now.Sub(b.refilled) > staleBucketAge {
				delete(rl.buckets, key)
			}
		}
		rl.lastSweep = now
	}

	b, ok := rl.buckets[addr]
	if !ok {
		rl.buckets[addr] = &bucket{tokens: rl.rate - 1, refilled: now}
		return true
	}

	if intervals := int(now.Sub(b.refilled) / rl.interval); intervals > 0 {
		b.tokens += intervals * rl.rate
		if b.tokens > rl.rate {
			b.tokens = rl.rate
		}
	}
	b.refilled = now

	if b.tokens <= 0 {
		slog.Warn("rate_limit_exceeded", "addr", addr)
		return false
	}
	b.tokens--
	return true
}

// clientAddr strips the port so a browser reconnecting on a new source port
// shares one bucket.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit returns middleware that throttles /api/ requests per client.
// Page and asset loads pass through so a busy dashboard does not starve
// the bundle fetches that render it.
func RateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/api/") && !limiter.Allow(clientAddr(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"success":false,"message":"too many requests"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeaders adds OWASP recommended headers. The CSP permits inline
// styles because the admin bundle injects component styles at runtime.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; script-src 'self'; img-src 'self' data:; connect-src 'self'")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		next.ServeHTTP(w, r)
	})
}

// CSRF returns a handler that protects form submissions against CSRF.
// JSON API calls authenticate with a bearer token or session cookie plus
// a JSON body; both shapes are exempt because a cross-site form cannot
// produce them.
func CSRF(authKey []byte, secure bool, trustedOrigins []string) func(http.Handler) http.Handler {
	csrfProtect := csrf.Protect(
		authKey,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.TrustedOrigins(trustedOrigins),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			exempt := strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") ||
				strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")
			if exempt {
				next.ServeHTTP(w, r)
				return
			}
			csrfProtect(next).ServeHTTP(w, r)
		})
	}
}

// Chain applies middlewares in order (outer to inner).
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
