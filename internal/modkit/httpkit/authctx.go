package httpkit

import (
	"net/http"

	perrs "leadimmo/internal/platform/errors"
	pnet "leadimmo/internal/platform/net"
)

// Principal returns the authenticated principal from the request context
func Principal(r *http.Request) (string, error) {
	p := pnet.Principal(r.Context())
	if p == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return p, nil
}

// MustPrincipal returns the authenticated principal or panics
// only use on routes protected by the auth middleware
func MustPrincipal(r *http.Request) string {
	p, err := Principal(r)
	if err != nil {
		panic(err)
	}
	return p
}
