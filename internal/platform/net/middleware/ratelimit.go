package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"leadimmo/internal/core/ratelimit"
	perr "leadimmo/internal/platform/errors"
	pnet "leadimmo/internal/platform/net"
)

// RateLimitPolicy configures a fixed-window throttle for one route group
type RateLimitPolicy struct {
	// Limit is the request cap per window, <=0 falls back to the limiter default
	Limit int
	// Window is the fixed window length, <=0 falls back to the limiter default
	Window time.Duration
	// KeyPrefix namespaces buckets so different routes do not share counters
	KeyPrefix string
	// Key overrides the bucket key derivation, defaults to client IP
	Key func(r *http.Request) string
}

// ClientIP extracts the bare IP from RemoteAddr, relying on RealIP upstream
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit enforces the policy against the shared limiter and writes a 429
// envelope when the caller is over budget. Every response carries the
// X-RateLimit-Remaining and X-RateLimit-Reset headers
func RateLimit(
	l *ratelimit.Limiter,
	pol RateLimitPolicy,
	write func(w http.ResponseWriter, status int, body any),
) func(http.Handler) http.Handler {
	keyOf := pol.Key
	if keyOf == nil {
		keyOf = ClientIP
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := pol.KeyPrefix + keyOf(r)
			d := l.Check(key, pol.Limit, pol.Window)

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

			if !d.Allowed {
				err := perr.Newf(perr.ErrorCodeTooManyRequests,
					"rate limit exceeded, retry after %s", d.ResetAt.UTC().Format(time.RFC3339))
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
