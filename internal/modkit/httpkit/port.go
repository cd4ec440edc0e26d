// Package httpkit provides tiny HTTP helpers and adapters
package httpkit

import (
	"net/http"
	"strings"

	perrs "leadimmo/internal/platform/errors"
)

// TokenFunc verifies a bearer token and returns the principal it identifies
type TokenFunc func(token string) (principal string, err error)

// Port implements middleware.AuthPort by reading Authorization and delegating to a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a simple verifier function
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// Parse extracts the principal from an Authorization Bearer token
// returns unauthorized when the header is missing, malformed, or the verifier rejects it
func (p *Port) Parse(r *http.Request) (string, error) {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	if authz == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	const prefix = "bearer"
	if !strings.HasPrefix(strings.ToLower(authz), prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}

	if p.parse == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	principal, err := p.parse(raw)
	if err != nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return principal, nil
}

// StaticTokenPort returns a Port that accepts exactly one expected token
// an empty expected token rejects everything, it never disables the check
func StaticTokenPort(principal, expected string) *Port {
	return NewPortFunc(func(token string) (string, error) {
		if expected == "" || token != expected {
			return "", perrs.Unauthorizedf("invalid bearer token")
		}
		return principal, nil
	})
}
