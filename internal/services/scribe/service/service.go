// Package service contains the draft generation workflow
package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"leadimmo/internal/core/slugger"
	"leadimmo/internal/modkit/repokit"
	"leadimmo/internal/platform/logger"
	"leadimmo/internal/services/scribe/domain"
	"leadimmo/internal/services/scribe/refdata"
	"leadimmo/internal/services/scribe/repo"
	trdomain "leadimmo/internal/services/translator/domain"
)

// Service defines the service contract for the scribe
type Service interface{ domain.GeneratePort }

// Config carries generation policy
type Config struct {
	// Status is the persistence status for new drafts, draft or published
	Status string
	// AutoTranslateLocales is the configured allowlist before intersection
	// with the supported locale set
	AutoTranslateLocales []string
	// Category stamps the content category on generated drafts
	Category string
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	translator trdomain.ServicePort
	picker     domain.Picker
	keywords   []refdata.Keyword
	pillars    []refdata.Pillar
	cfg        Config
	now        func() time.Time
}

// Option mutates the service during construction
type Option func(*Svc)

// WithPicker overrides the selection strategy, used by tests
func WithPicker(p domain.Picker) Option {
	return func(s *Svc) { s.picker = p }
}

// WithClock overrides the time source for slug tokens, used by tests
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// WithReference overrides the embedded keyword and pillar collections
func WithReference(kws []refdata.Keyword, ps []refdata.Pillar) Option {
	return func(s *Svc) {
		s.keywords = kws
		s.pillars = ps
	}
}

// randPicker is the production uniform selection strategy
type randPicker struct{}

func (randPicker) Pick(n int) int { return rand.IntN(n) }

// New creates a new scribe service over the embedded reference data
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], tr trdomain.ServicePort, cfg Config, opts ...Option) *Svc {
	if db == nil {
		panic("scribe.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("scribe.Service requires a non nil Repo binder")
	}
	if tr == nil {
		panic("scribe.Service requires a non nil translator")
	}
	if cfg.Status == "" {
		cfg.Status = domain.StatusDraft
	}
	if cfg.Category == "" {
		cfg.Category = "market"
	}

	kws, ps := refdata.MustLoad()
	s := &Svc{
		Repo:       binder.Bind(db),
		binder:     binder,
		db:         db,
		translator: tr,
		picker:     randPicker{},
		keywords:   kws,
		pillars:    ps,
		cfg:        cfg,
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Generate composes one draft from a randomly selected keyword and pillar,
// persists it, then fans translation out over the configured locale
// allowlist. Base persistence failure aborts; per-locale translation
// failures are absorbed and logged
func (s *Svc) Generate(ctx context.Context) (domain.GenerateResult, error) {
	keyword := s.keywords[s.picker.Pick(len(s.keywords))]
	pillar := s.pillars[s.picker.Pick(len(s.pillars))]

	id := uuid.NewString()
	title := fmt.Sprintf("Koh Samui %s outlook", keyword.Primary)
	slug := slugger.Slugify(fmt.Sprintf("%s-%d", keyword.Primary, s.now().UnixMilli()))
	excerpt := fmt.Sprintf("Draft insight exploring %s opportunities in Koh Samui.", keyword.Primary)

	seo := dedupUnion(keyword.SEOTerms, pillar.SEOTerms)
	body := composeBody(keyword, pillar, seo)

	if err := s.Repo.InsertPost(ctx, repo.PostRow{
		ID:          id,
		Title:       title,
		Slug:        slug,
		Excerpt:     excerpt,
		BodyHTML:    body,
		Category:    s.cfg.Category,
		Status:      s.cfg.Status,
		Pillar:      false,
		SEOKeywords: seo,
	}); err != nil {
		return domain.GenerateResult{}, err
	}

	translated := make([]string, 0, len(s.cfg.AutoTranslateLocales))
	for _, locale := range s.cfg.AutoTranslateLocales {
		locale = strings.TrimSpace(locale)
		if locale == "" || !trdomain.IsSupported(locale) {
			continue
		}

		if _, err := s.translator.TranslatePost(ctx, trdomain.TranslatePostInput{
			PostID:       id,
			TargetLocale: locale,
		}); err != nil {
			// locales are independent; a failed variant never aborts the draft
			logger.C(ctx).Warn().
				Err(err).
				Str("post_id", id).
				Str("target_locale", locale).
				Msg("draft variant translation failed")
		}
		translated = append(translated, locale)
	}

	logger.C(ctx).Info().
		Str("post_id", id).
		Str("slug", slug).
		Strs("translated_locales", translated).
		Msg("draft generated")

	return domain.GenerateResult{
		PostID:            id,
		Slug:              slug,
		TranslatedLocales: translated,
	}, nil
}

// dedupUnion merges both term lists preserving first-seen order
func dedupUnion(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, term := range append(append([]string{}, a...), b...) {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	return out
}

// composeBody assembles the draft markup from the keyword's prose and
// signals, the pillar's own body, the SEO term union, and a fixed
// three-item action checklist
func composeBody(k refdata.Keyword, p refdata.Pillar, seo []string) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"<p>This AI assisted draft explores %s investments within Koh Samui, connected to the %s pillar.</p>",
		k.Primary, p.Title)

	b.WriteString("<h2>Why it matters</h2>")
	b.WriteString("<p>" + k.Context + "</p>")

	b.WriteString("<h3>Signals to monitor</h3><ul>")
	for _, sig := range k.Signals {
		b.WriteString("<li>" + sig + "</li>")
	}
	b.WriteString("</ul>")

	b.WriteString(p.BodyHTML)

	b.WriteString("<h3>SEO focus</h3><ul>")
	for _, term := range seo {
		b.WriteString("<li>" + term + "</li>")
	}
	b.WriteString("</ul>")

	b.WriteString("<h3>Action checklist</h3><ul>")
	fmt.Fprintf(&b, "<li>Shortlist three %s opportunities and request full title documents.</li>", k.Primary)
	fmt.Fprintf(&b, "<li>Cross-check each candidate against the %s guidance above.</li>", p.Title)
	fmt.Fprintf(&b, "<li>Book a consultation to pressure-test %s assumptions before committing.</li>", k.Primary)
	b.WriteString("</ul>")

	return b.String()
}
