// Package module wires the scribe into the API using modkit
package module

import (
	"net/http"

	modkit "leadimmo/internal/modkit"
	"leadimmo/internal/modkit/httpkit"
	str "leadimmo/internal/platform/strings"
	"leadimmo/internal/services/scribe/domain"
	scribehttp "leadimmo/internal/services/scribe/http"
	scriberepo "leadimmo/internal/services/scribe/repo"
	scribesvc "leadimmo/internal/services/scribe/service"
	trdomain "leadimmo/internal/services/translator/domain"
)

// Ports declares the required injected translator port for this module
type Ports struct {
	Translator trdomain.ServicePort
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

	svc scribesvc.Service
}

// New constructs a scribe module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("scribe"),
		modkit.WithPrefix("/cron"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Translator == nil {
		panic("scribe module requires Translator port (from services/translator)")
	}

	o := FromConfig(deps.Cfg)
	svc := scribesvc.New(deps.PG, scriberepo.NewPG(), injected.Translator, scribesvc.Config{
		Status:               o.PublishStatus,
		AutoTranslateLocales: o.AutoTranslateLocales,
		Category:             o.Category,
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
	m.ports = domain.GeneratePort(svc)

	external := b.Register
	m.register = func(r httpkit.Router) {
		scribehttp.Register(r, m.svc)
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
