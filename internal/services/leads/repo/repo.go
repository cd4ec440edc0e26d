// Package repo provides postgres access for the leads service
package repo

import (
	"context"
	"encoding/json"

	"leadimmo/internal/modkit/repokit"
	perr "leadimmo/internal/platform/errors"
	"leadimmo/internal/services/leads/domain"
)

// Repo defines the repository contract for lead capture
type Repo interface {
	// InsertLead persists the lead row
	InsertLead(ctx context.Context, row LeadRow) error
	// InsertConsent records the consent text version accepted with the lead
	InsertConsent(ctx context.Context, row ConsentRow) error
	// InsertEvent appends an audit event for the lead
	InsertEvent(ctx context.Context, row EventRow) error
	// ExportRows returns all leads joined with their consent version, newest first
	ExportRows(ctx context.Context) ([]domain.ExportRow, error)
}

// LeadRow is one captured lead ready for persistence
type LeadRow struct {
	ID             string
	FirstName      string
	Phone          string
	Email          string
	Budget         string
	PropertyType   string
	Areas          []string
	Timing         string
	CallPreference string
	Timezone       string
	Message        string
	Locale         string
}

// ConsentRow records which consent text a lead accepted
type ConsentRow struct {
	ID          string
	LeadID      string
	TextVersion string
}

// EventRow is one audit event tied to a lead
type EventRow struct {
	ID     string
	LeadID string
	Type   string
	Meta   map[string]any
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

func (r *queries) InsertLead(ctx context.Context, row LeadRow) error {
	areas, err := json.Marshal(row.Areas)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "marshal lead areas")
	}

	const sql = `
insert into leads (id, first_name, phone, email, budget, property_type, areas_json, timing, call_preference, timezone, message, locale, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
`
	_, err = r.q.Exec(ctx, sql,
		row.ID, row.FirstName, row.Phone, row.Email, row.Budget, row.PropertyType,
		string(areas), row.Timing, row.CallPreference, row.Timezone, row.Message, row.Locale,
	)
	return perr.FromPostgresWithField(err, "insert lead")
}

func (r *queries) InsertConsent(ctx context.Context, row ConsentRow) error {
	const sql = `
insert into consents (id, lead_id, text_version, created_at)
values ($1, $2, $3, now())
`
	_, err := r.q.Exec(ctx, sql, row.ID, row.LeadID, row.TextVersion)
	return perr.FromPostgresWithField(err, "insert consent")
}

func (r *queries) InsertEvent(ctx context.Context, row EventRow) error {
	meta, err := json.Marshal(row.Meta)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "marshal event meta")
	}

	const sql = `
insert into events (id, lead_id, type, meta_json, created_at)
values ($1, $2, $3, $4, now())
`
	_, err = r.q.Exec(ctx, sql, row.ID, row.LeadID, row.Type, string(meta))
	return perr.FromPostgresWithField(err, "insert event")
}

func (r *queries) ExportRows(ctx context.Context) ([]domain.ExportRow, error) {
	const sql = `
select
  l.id::text, l.created_at, l.first_name, l.phone, l.email,
  l.budget, l.property_type, l.areas_json, l.timing,
  l.call_preference, l.timezone, coalesce(c.text_version, '')
from leads l
left join consents c on c.lead_id = l.id
order by l.created_at desc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "query leads export")
	}
	defer rows.Close()

	var out []domain.ExportRow
	for rows.Next() {
		var (
			row       domain.ExportRow
			areasJSON string
		)
		if err := rows.Scan(
			&row.ID, &row.CreatedAt, &row.FirstName, &row.Phone, &row.Email,
			&row.Budget, &row.PropertyType, &areasJSON, &row.Timing,
			&row.CallPreference, &row.Timezone, &row.ConsentVersion,
		); err != nil {
			return nil, perr.FromPostgres(err, "scan lead export row")
		}
		if areasJSON != "" {
			if err := json.Unmarshal([]byte(areasJSON), &row.Areas); err != nil {
				return nil, perr.Wrap(err, perr.ErrorCodeJSON, "decode lead areas")
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "iterate leads export")
	}
	return out, nil
}
