// Package service contains the memoizing translation workflows
package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"leadimmo/internal/modkit/repokit"
	perr "leadimmo/internal/platform/errors"
	"leadimmo/internal/platform/logger"
	"leadimmo/internal/services/translator/cache"
	"leadimmo/internal/services/translator/domain"
	"leadimmo/internal/services/translator/llm"
	"leadimmo/internal/services/translator/repo"
)

// Service defines the service contract for the translator
type Service interface{ domain.ServicePort }

// Upstream is the seam over the chat-completions client, stubbed in tests
type Upstream interface {
	Configured() bool
	Translate(ctx context.Context, p domain.Payload) (llm.Translation, error)
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	cache cache.Store
	up    Upstream
	sf    singleflight.Group
}

// New creates a new translator service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], store cache.Store, up Upstream) *Svc {
	if db == nil {
		panic("translator.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("translator.Service requires a non nil Repo binder")
	}
	if store == nil {
		panic("translator.Service requires a non nil cache store")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cache: store, up: up}
}

// Translate returns the memoized result for cacheKey, computing it on first
// sight. Upstream failure degrades into a marked fallback result; the caller
// always gets usable content. Concurrent first calls for one key are
// collapsed so at most one upstream request is in flight per key
func (s *Svc) Translate(ctx context.Context, cacheKey string, p domain.Payload) domain.Result {
	if r, ok := s.cache.Get(cacheKey); ok {
		return r
	}

	v, _, _ := s.sf.Do(cacheKey, func() (any, error) {
		// a winner may have populated the cache while we queued
		if r, ok := s.cache.Get(cacheKey); ok {
			return r, nil
		}
		res := s.compute(ctx, cacheKey, p)
		s.cache.Put(cacheKey, res)
		return res, nil
	})
	return v.(domain.Result)
}

func (s *Svc) compute(ctx context.Context, cacheKey string, p domain.Payload) domain.Result {
	if s.up == nil || !s.up.Configured() {
		return fallback(p, domain.MarkerNeeded, "not configured")
	}

	t, err := s.up.Translate(ctx, p)
	if err != nil {
		logger.C(ctx).Warn().
			Err(err).
			Str("cache_key", cacheKey).
			Str("target_locale", p.TargetLocale).
			Msg("translation degraded to fallback")
		return fallback(p, domain.MarkerError, err.Error())
	}

	return domain.Result{
		Title:    t.Title,
		Excerpt:  t.Excerpt,
		BodyHTML: t.BodyHTML,
		Source:   domain.SourceMachine,
	}
}

// fallback builds the deterministic stand-in. Title and excerpt always carry
// the needed-translation marker; only the body marker distinguishes the
// unconfigured branch from a failed upstream attempt
func fallback(p domain.Payload, bodyMarker, note string) domain.Result {
	excerpt := "Translation pending " + domain.MarkerNeeded
	if p.Excerpt != nil && *p.Excerpt != "" {
		excerpt = *p.Excerpt + " " + domain.MarkerNeeded
	}
	return domain.Result{
		Title:    p.Title + " " + domain.MarkerNeeded,
		Excerpt:  &excerpt,
		BodyHTML: p.BodyHTML + "<p><em>" + bodyMarker + "</em></p>",
		Note:     note,
		Source:   domain.SourceFallback,
	}
}

// TranslatePost translates one stored post into one locale and upserts the
// variant keyed by (post id, locale). The cache key is "{postID}:{locale}"
// so repeated requests reuse the memoized result
func (s *Svc) TranslatePost(ctx context.Context, in domain.TranslatePostInput) (domain.TranslatePostOutput, error) {
	if !domain.IsSupported(in.TargetLocale) {
		return domain.TranslatePostOutput{}, perr.InvalidArgf("unsupported target locale %q", in.TargetLocale)
	}

	post, err := s.Repo.GetPost(ctx, in.PostID)
	if err != nil {
		return domain.TranslatePostOutput{}, err
	}

	res := s.Translate(ctx, post.ID+":"+in.TargetLocale, domain.Payload{
		Title:        post.Title,
		Excerpt:      post.Excerpt,
		BodyHTML:     post.BodyHTML,
		TargetLocale: in.TargetLocale,
	})

	if err := s.Repo.UpsertTranslation(ctx, repo.TranslationRow{
		ID:       uuid.NewString(),
		PostID:   post.ID,
		Locale:   in.TargetLocale,
		Title:    res.Title,
		Excerpt:  res.Excerpt,
		BodyHTML: res.BodyHTML,
	}); err != nil {
		return domain.TranslatePostOutput{}, err
	}

	logger.C(ctx).Info().
		Str("post_id", post.ID).
		Str("target_locale", in.TargetLocale).
		Str("source", string(res.Source)).
		Msg("post translated")

	msg := "Translation stored."
	if res.Source == domain.SourceFallback {
		msg = "Translator unavailable: stored source copy with translation note."
	}
	return domain.TranslatePostOutput{
		PostID:       post.ID,
		TargetLocale: in.TargetLocale,
		Source:       res.Source,
		Note:         res.Note,
		Message:      msg,
	}, nil
}
