package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"leadimmo/internal/platform/config"
	"leadimmo/internal/platform/logger"
	"leadimmo/internal/platform/store"

	scribemod "leadimmo/internal/services/scribe/module"
	scriberepo "leadimmo/internal/services/scribe/repo"
	scribesvc "leadimmo/internal/services/scribe/service"
	"leadimmo/internal/services/translator/cache"
	"leadimmo/internal/services/translator/llm"
	translatormod "leadimmo/internal/services/translator/module"
	translatorrepo "leadimmo/internal/services/translator/repo"
	translatorsvc "leadimmo/internal/services/translator/service"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		fMode  = flag.String("mode", "once", "once | loop")
		fEvery = flag.Duration("every", 24*time.Hour, "generation interval in loop mode")
	)
	flag.Parse()

	// no HTTP hop, the worker drives the same services the API mounts
	trOpts := translatormod.FromConfig(root)
	client := llm.New(llm.Config{
		APIKey:  trOpts.APIKey,
		APIURL:  trOpts.APIURL,
		Model:   trOpts.Model,
		Timeout: trOpts.Timeout,
	})
	trSvc := translatorsvc.New(st.PG, translatorrepo.NewPG(), cache.NewMemory(), client)

	scOpts := scribemod.FromConfig(root)
	scribe := scribesvc.New(st.PG, scriberepo.NewPG(), trSvc, scribesvc.Config{
		Status:               scOpts.PublishStatus,
		AutoTranslateLocales: scOpts.AutoTranslateLocales,
		Category:             scOpts.Category,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	generate := func() {
		out, err := scribe.Generate(ctx)
		if err != nil {
			l.Error().Err(err).Msg("draft generation failed")
			return
		}
		l.Info().
			Str("post_id", out.PostID).
			Str("slug", out.Slug).
			Strs("translated_locales", out.TranslatedLocales).
			Msg("draft generation complete")
	}

	switch *fMode {
	case "once":
		generate()
	case "loop":
		l.Info().Dur("every", *fEvery).Msg("scribe loop started")
		ticker := time.NewTicker(*fEvery)
		defer ticker.Stop()

		generate()
		for {
			select {
			case <-ctx.Done():
				l.Info().Msg("scribe loop stopped")
				return
			case <-ticker.C:
				generate()
			}
		}
	default:
		l.Fatal().Str("mode", *fMode).Msg("unknown mode, want once or loop")
	}
}
