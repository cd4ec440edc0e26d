package middleware

import (
	"net/http"

	pnet "leadimmo/internal/platform/net"
)

// AuthPort is a tiny seam token verifiers implement
type AuthPort interface {
	// Parse returns the authenticated principal from the request or an error
	Parse(r *http.Request) (principal string, err error)
}

// Auth verifies the request through the port and stashes the principal on context
// a nil port disables the check entirely
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			principal, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
