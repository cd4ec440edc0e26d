// Package module wires the translator into the API using modkit
package module

import (
	"net/http"

	modkit "leadimmo/internal/modkit"
	"leadimmo/internal/modkit/httpkit"
	str "leadimmo/internal/platform/strings"
	"leadimmo/internal/services/translator/cache"
	"leadimmo/internal/services/translator/domain"
	translatorhttp "leadimmo/internal/services/translator/http"
	"leadimmo/internal/services/translator/llm"
	translatorrepo "leadimmo/internal/services/translator/repo"
	translatorsvc "leadimmo/internal/services/translator/service"
)

// Ports exposes the translator seams other modules consume
type Ports struct {
	// Translate is the memoized translation operation (scribe fan-out)
	Translate domain.TranslatePort
	// Service is the full contract including the stored-post flow
	Service translatorsvc.Service
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc translatorsvc.Service
}

// New constructs a translator module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("translator"),
		modkit.WithPrefix("/posts"),
	}, opts...)...)

	o := FromConfig(deps.Cfg)
	client := llm.New(llm.Config{
		APIKey:  o.APIKey,
		APIURL:  o.APIURL,
		Model:   o.Model,
		Timeout: o.Timeout,
	})

	svc := translatorsvc.New(deps.PG, translatorrepo.NewPG(), cache.NewMemory(), client)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Translate: svc, Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		translatorhttp.Register(r, m.svc)
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
