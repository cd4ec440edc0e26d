// Package service contains the lead capture workflow
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"leadimmo/internal/modkit/repokit"
	perr "leadimmo/internal/platform/errors"
	"leadimmo/internal/platform/logger"
	"leadimmo/internal/services/leads/domain"
	"leadimmo/internal/services/leads/repo"
)

// Service defines the service contract for leads
type Service interface{ domain.ServicePort }

// Config carries submission policy
type Config struct {
	// DefaultTimezone applies when a submission carries none
	DefaultTimezone string
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	notifier domain.Notifier
	cfg      Config
}

// LogNotifier announces stored leads on the structured log only.
// Mail delivery hangs off the same port in deployments that want it
type LogNotifier struct{}

// LeadSubmitted implements the Notifier interface
func (LogNotifier) LeadSubmitted(ctx context.Context, leadID string, in domain.LeadInput) {
	logger.C(ctx).Info().
		Str("lead_id", leadID).
		Str("locale", in.Locale).
		Str("timezone", in.Timezone).
		Msg("lead submitted")
}

// New creates a new leads service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], n domain.Notifier, cfg Config) *Svc {
	if db == nil {
		panic("leads.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("leads.Service requires a non nil Repo binder")
	}
	if n == nil {
		n = LogNotifier{}
	}
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = domain.DefaultTimezone
	}
	return &Svc{
		Repo:     binder.Bind(db),
		binder:   binder,
		db:       db,
		notifier: n,
		cfg:      cfg,
	}
}

// Submit persists one lead with its consent and audit event in a single
// transaction. The honeypot field rejects bots before any write
func (s *Svc) Submit(ctx context.Context, in domain.LeadInput) (domain.SubmitOutput, error) {
	if strings.TrimSpace(in.Honeypot) != "" {
		return domain.SubmitOutput{}, perr.Newf(perr.ErrorCodeValidation, "spam detected")
	}
	if !in.Consent {
		return domain.SubmitOutput{}, perr.Newf(perr.ErrorCodeValidation, "consent is required")
	}
	if in.Locale == "" {
		in.Locale = domain.DefaultLocale
	}
	if in.Timezone == "" {
		in.Timezone = s.cfg.DefaultTimezone
	}

	leadID := uuid.NewString()
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		if err := r.InsertLead(ctx, repo.LeadRow{
			ID:             leadID,
			FirstName:      in.FirstName,
			Phone:          in.Phone,
			Email:          in.Email,
			Budget:         in.Budget,
			PropertyType:   in.PropertyType,
			Areas:          in.Areas,
			Timing:         in.Timing,
			CallPreference: in.CallPreference,
			Timezone:       in.Timezone,
			Message:        in.Message,
			Locale:         in.Locale,
		}); err != nil {
			return err
		}

		if err := r.InsertConsent(ctx, repo.ConsentRow{
			ID:          uuid.NewString(),
			LeadID:      leadID,
			TextVersion: domain.ConsentTextVersion,
		}); err != nil {
			return err
		}

		return r.InsertEvent(ctx, repo.EventRow{
			ID:     uuid.NewString(),
			LeadID: leadID,
			Type:   domain.EventLeadSubmit,
			Meta:   map[string]any{"locale": in.Locale, "message": in.Message},
		})
	})
	if err != nil {
		return domain.SubmitOutput{}, err
	}

	s.notifier.LeadSubmitted(ctx, leadID, in)
	return domain.SubmitOutput{Success: true, LeadID: leadID}, nil
}

// Export returns all stored leads for the admin CSV download
func (s *Svc) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return s.Repo.ExportRows(ctx)
}
