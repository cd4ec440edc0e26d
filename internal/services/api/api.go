// Package api provides the HTTP API for the application
package api

import (
	"leadimmo/internal/platform/config"
	"leadimmo/internal/platform/logger"
	phttp "leadimmo/internal/platform/net/http"
	"leadimmo/internal/platform/store"

	"leadimmo/internal/core/ratelimit"
	"leadimmo/internal/modkit"
	"leadimmo/internal/modkit/httpkit"
	"leadimmo/internal/modkit/module"
	"leadimmo/internal/modkit/swaggerkit"

	leadsmod "leadimmo/internal/services/leads/module"
	metamod "leadimmo/internal/services/meta/module"
	scribemod "leadimmo/internal/services/scribe/module"
	trdomain "leadimmo/internal/services/translator/domain"
	translatormod "leadimmo/internal/services/translator/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	auth := opt.Config.Prefix("AUTH_")
	adminPort := httpkit.StaticTokenPort("admin", auth.MayString("ADMIN_TOKEN", ""))
	cronPort := httpkit.StaticTokenPort("cron", auth.MayString("CRON_TOKEN", ""))

	// one limiter shared by every throttled route group
	limiter := ratelimit.New()

	// translator first so its port can feed the scribe fan-out
	translator := translatormod.New(deps,
		modkit.WithMiddlewares(httpkit.Auth(adminPort)),
	)
	trSvc := module.MustPortsOf[trdomain.ServicePort](translator)

	scribe := scribemod.New(deps,
		modkit.WithPorts(scribemod.Ports{Translator: trSvc}),
		modkit.WithMiddlewares(httpkit.Auth(cronPort)),
	)

	leads := leadsmod.New(deps,
		modkit.WithPorts(leadsmod.Ports{Limiter: limiter, Admin: adminPort}),
	)

	mods := []module.Module{
		metamod.New(deps),
		translator,
		scribe,
		leads,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
