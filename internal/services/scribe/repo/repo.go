// Package repo provides postgres access for the scribe service
package repo

import (
	"context"
	"encoding/json"

	"leadimmo/internal/modkit/repokit"
	perr "leadimmo/internal/platform/errors"
)

// Repo defines the repository contract for generated drafts
type Repo interface {
	// InsertPost persists the canonical draft. Failure here aborts generation
	InsertPost(ctx context.Context, row PostRow) error
}

// PostRow is one generated draft ready for persistence
type PostRow struct {
	ID          string
	Title       string
	Slug        string
	Excerpt     string
	BodyHTML    string
	Category    string
	Status      string
	Pillar      bool
	SEOKeywords []string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) InsertPost(ctx context.Context, row PostRow) error {
	seo, err := json.Marshal(map[string][]string{"keywords": row.SEOKeywords})
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "marshal seo keywords")
	}

	const sql = `
insert into posts (id, title, slug, excerpt, body_html, category, status, pillar, seo_json, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
`
	_, err = r.q.Exec(ctx, sql,
		row.ID, row.Title, row.Slug, row.Excerpt, row.BodyHTML,
		row.Category, row.Status, row.Pillar, string(seo),
	)
	return perr.FromPostgresWithField(err, "insert generated draft")
}
