package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"leadimmo/internal/core/ratelimit"
	"leadimmo/internal/platform/net/middleware"
)

func TestRateLimit_AllowsUnderLimitAndSetsHeaders(t *testing.T) {
	l := ratelimit.New()
	mw := middleware.RateLimit(l, middleware.RateLimitPolicy{Limit: 2, Window: time.Hour}, writeJSON)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.RemoteAddr = "203.0.113.9:51234"

	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through, got %d", rr.Code)
	}
	if got := rr.Header().Get("X-RateLimit-Remaining"); got != "1" {
		t.Fatalf("remaining header: want 1, got %q", got)
	}
	reset, err := strconv.ParseInt(rr.Header().Get("X-RateLimit-Reset"), 10, 64)
	if err != nil || reset <= time.Now().Unix() {
		t.Fatalf("reset header should be a future unix timestamp, got %q", rr.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimit_RejectsOverLimitWith429(t *testing.T) {
	l := ratelimit.New()
	mw := middleware.RateLimit(l, middleware.RateLimitPolicy{Limit: 1, Window: time.Hour}, writeJSON)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.RemoteAddr = "203.0.113.9:51234"

	rr1 := httptest.NewRecorder()
	mw(next).ServeHTTP(rr1, req)
	if rr1.Code != http.StatusOK {
		t.Fatalf("first call should pass, got %d", rr1.Code)
	}

	rr2 := httptest.NewRecorder()
	mw(next).ServeHTTP(rr2, req)
	if rr2.Code != http.StatusTooManyRequests {
		t.Fatalf("second call should throttle, got %d", rr2.Code)
	}
	if got := rr2.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Fatalf("remaining header on reject: want 0, got %q", got)
	}
}

func TestRateLimit_KeyPrefixSeparatesRoutes(t *testing.T) {
	l := ratelimit.New()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	leads := middleware.RateLimit(l, middleware.RateLimitPolicy{Limit: 1, Window: time.Hour, KeyPrefix: "lead:"}, writeJSON)
	cron := middleware.RateLimit(l, middleware.RateLimitPolicy{Limit: 1, Window: time.Hour, KeyPrefix: "cron:"}, writeJSON)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "198.51.100.7:1000"

	rr := httptest.NewRecorder()
	leads(next).ServeHTTP(rr, req)

	rr = httptest.NewRecorder()
	cron(next).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("different prefixes must not share buckets, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	leads(next).ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("same prefix should throttle, got %d", rr.Code)
	}
}

func TestRateLimit_CustomKeyFunc(t *testing.T) {
	l := ratelimit.New()
	mw := middleware.RateLimit(l, middleware.RateLimitPolicy{
		Limit:  1,
		Window: time.Hour,
		Key:    func(r *http.Request) string { return r.Header.Get("X-Api-Key") },
	}, writeJSON)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mk := func(key string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Api-Key", key)
		return req
	}

	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, mk("alpha"))

	rr = httptest.NewRecorder()
	mw(next).ServeHTTP(rr, mk("alpha"))
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("same api key should throttle, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	mw(next).ServeHTTP(rr, mk("beta"))
	if rr.Code != http.StatusOK {
		t.Fatalf("other api key should pass, got %d", rr.Code)
	}
}
