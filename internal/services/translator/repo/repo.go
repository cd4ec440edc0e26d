// Package repo provides postgres access for the translator service
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"leadimmo/internal/modkit/repokit"
	perr "leadimmo/internal/platform/errors"
)

// Repo defines the repository contract for translations
type Repo interface {
	// GetPost loads the translatable fields of one post
	GetPost(ctx context.Context, id string) (PostRow, error)
	// UpsertTranslation stores or replaces the locale variant for a post
	UpsertTranslation(ctx context.Context, row TranslationRow) error
}

// PostRow is the translatable slice of a stored post
type PostRow struct {
	ID       string
	Title    string
	Excerpt  *string
	BodyHTML string
}

// TranslationRow is one locale variant keyed by (post_id, locale)
type TranslationRow struct {
	ID       string
	PostID   string
	Locale   string
	Title    string
	Excerpt  *string
	BodyHTML string
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

func (r *queries) GetPost(ctx context.Context, id string) (PostRow, error) {
	const sql = `
select id::text, title, excerpt, body_html
from posts
where id = $1
`
	var p PostRow
	if err := r.q.QueryRow(ctx, sql, id).Scan(&p.ID, &p.Title, &p.Excerpt, &p.BodyHTML); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return PostRow{}, perr.NotFoundf("post %s not found", id)
		}
		return PostRow{}, perr.FromPostgres(err, "load post")
	}
	return p, nil
}

func (r *queries) UpsertTranslation(ctx context.Context, row TranslationRow) error {
	const sql = `
insert into post_translations (id, post_id, locale, title, excerpt, body_html, updated_at)
values ($1, $2, $3, $4, $5, $6, now())
on conflict (post_id, locale) do update
set title = excluded.title,
    excerpt = excluded.excerpt,
    body_html = excluded.body_html,
    updated_at = now()
`
	_, err := r.q.Exec(ctx, sql, row.ID, row.PostID, row.Locale, row.Title, row.Excerpt, row.BodyHTML)
	return perr.FromPostgres(err, "upsert post translation")
}
