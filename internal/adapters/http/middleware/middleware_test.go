package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRateLimiterConsumesAndRefills(t *testing.T) {
	rl := NewRateLimiter(2, 10*time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should pass")
	}
	if !rl.Allow("10.0.0.1") {
		t.Fatal("second request should pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("third request should be throttled")
	}

	// Another client has its own bucket.
	if !rl.Allow("10.0.0.2") {
		t.Fatal("separate client should not share the bucket")
	}

	time.Sleep(25 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Fatal("bucket should refill after the interval elapses")
	}
}

func TestRateLimitOnlyThrottlesAPIRoutes(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "10.0.0.9:51002"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := do("/api/communities"); got != http.StatusOK {
		t.Fatalf("first api call: got %d, want 200", got)
	}
	if got := do("/api/communities"); got != http.StatusTooManyRequests {
		t.Fatalf("second api call: got %d, want 429", got)
	}
	// Asset loads are never counted.
	if got := do("/assets/app.js"); got != http.StatusOK {
		t.Fatalf("asset load: got %d, want 200", got)
	}
}

func TestRateLimitSharesBucketAcrossPorts(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i, addr := range []string{"10.0.0.3:40001", "10.0.0.3:40002"} {
		req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if i == 0 && rec.Code != http.StatusOK {
			t.Fatalf("first port: got %d, want 200", rec.Code)
		}
		if i == 1 && rec.Code != http.StatusTooManyRequests {
			t.Fatalf("second port: got %d, want 429 (same client)", rec.Code)
		}
	}
}

func TestCSRFExemptsJSONAndBearerRequests(t *testing.T) {
	protect := CSRF([]byte("0123456789abcdef0123456789abcdef"), false, nil)
	handler := protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// JSON body: exempt.
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("json request: got %d, want 200", rec.Code)
	}

	// Bearer token: exempt.
	req = httptest.NewRequest(http.MethodPost, "/api/academies", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("bearer request: got %d, want 200", rec.Code)
	}

	// A bare cross-site form post is rejected without a token.
	req = httptest.NewRequest(http.MethodPost, "/api/academies", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("form request without token: got %d, want 403", rec.Code)
	}
}
