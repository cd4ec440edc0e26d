// Package module wires lead capture into the API using modkit
package module

import (
	"net/http"

	"leadimmo/internal/core/ratelimit"
	modkit "leadimmo/internal/modkit"
	"leadimmo/internal/modkit/httpkit"
	"leadimmo/internal/platform/net/middleware"
	str "leadimmo/internal/platform/strings"
	"leadimmo/internal/services/leads/domain"
	leadshttp "leadimmo/internal/services/leads/http"
	leadsrepo "leadimmo/internal/services/leads/repo"
	leadssvc "leadimmo/internal/services/leads/service"
)

// Ports declares the injected collaborators for this module
type Ports struct {
	// Limiter is the shared fixed-window limiter, a private one is built when nil
	Limiter *ratelimit.Limiter
	// Admin guards the export endpoint, nil disables the check
	Admin middleware.AuthPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc leadssvc.Service
}

// New constructs a leads module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("leads"),
		modkit.WithPrefix("/leads"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	limiter := injected.Limiter
	if limiter == nil {
		limiter = ratelimit.New()
	}

	o := FromConfig(deps.Cfg)
	svc := leadssvc.New(deps.PG, leadsrepo.NewPG(), leadssvc.LogNotifier{}, leadssvc.Config{
		DefaultTimezone: o.DefaultTimezone,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = domain.ServicePort(svc)

	throttle := httpkit.Throttle(limiter, middleware.RateLimitPolicy{
		Limit:     o.RateLimit,
		Window:    o.RateWindow,
		KeyPrefix: "lead:",
	})

	external := b.Register
	m.register = func(r httpkit.Router) {
		r.Group(func(gr httpkit.Router) {
			gr.Use(throttle)
			leadshttp.Register(gr, m.svc)
		})
		httpkit.Protected(r, injected.Admin, func(pr httpkit.Router) {
			leadshttp.RegisterAdmin(pr, m.svc)
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
