package service

import (
	"context"
	"errors"
	"testing"

	"leadimmo/internal/modkit/repokit"
	"leadimmo/internal/services/leads/domain"
	"leadimmo/internal/services/leads/repo"
)

// stubDB satisfies repokit.TxRunner for tests that never touch postgres
type stubDB struct{}

func (stubDB) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (stubDB) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (stubDB) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (stubDB) Tx(ctx context.Context, fn func(q repokit.RowQuerier) error) error {
	return fn(stubDB{})
}

// memRepo captures writes in memory
type memRepo struct {
	leads    []repo.LeadRow
	consents []repo.ConsentRow
	events   []repo.EventRow
	failLead error
}

func (m *memRepo) InsertLead(_ context.Context, row repo.LeadRow) error {
	if m.failLead != nil {
		return m.failLead
	}
	m.leads = append(m.leads, row)
	return nil
}

func (m *memRepo) InsertConsent(_ context.Context, row repo.ConsentRow) error {
	m.consents = append(m.consents, row)
	return nil
}

func (m *memRepo) InsertEvent(_ context.Context, row repo.EventRow) error {
	m.events = append(m.events, row)
	return nil
}

func (m *memRepo) ExportRows(context.Context) ([]domain.ExportRow, error) {
	out := make([]domain.ExportRow, 0, len(m.leads))
	for _, l := range m.leads {
		out = append(out, domain.ExportRow{ID: l.ID, FirstName: l.FirstName})
	}
	return out, nil
}

func (m *memRepo) Bind(repokit.Queryer) repo.Repo { return m }

type recordingNotifier struct {
	calls int
	last  string
}

func (n *recordingNotifier) LeadSubmitted(_ context.Context, leadID string, _ domain.LeadInput) {
	n.calls++
	n.last = leadID
}

func validInput() domain.LeadInput {
	return domain.LeadInput{
		FirstName: "Claire",
		Phone:     "+66123456",
		Areas:     []string{"Bophut", "Maenam"},
		Consent:   true,
	}
}

func TestSubmit_PersistsLeadConsentAndEvent(t *testing.T) {
	t.Parallel()

	mr := &memRepo{}
	n := &recordingNotifier{}
	s := New(stubDB{}, mr, n, Config{})

	out, err := s.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !out.Success || out.LeadID == "" {
		t.Fatalf("unexpected output: %+v", out)
	}

	if len(mr.leads) != 1 || len(mr.consents) != 1 || len(mr.events) != 1 {
		t.Fatalf("writes: leads=%d consents=%d events=%d", len(mr.leads), len(mr.consents), len(mr.events))
	}
	if mr.consents[0].LeadID != out.LeadID || mr.events[0].LeadID != out.LeadID {
		t.Fatal("consent and event must reference the lead")
	}
	if mr.consents[0].TextVersion != domain.ConsentTextVersion {
		t.Fatalf("consent version: got %q", mr.consents[0].TextVersion)
	}
	if mr.events[0].Type != domain.EventLeadSubmit {
		t.Fatalf("event type: got %q", mr.events[0].Type)
	}
	if n.calls != 1 || n.last != out.LeadID {
		t.Fatalf("notifier: calls=%d last=%q", n.calls, n.last)
	}
}

func TestSubmit_AppliesDefaults(t *testing.T) {
	t.Parallel()

	mr := &memRepo{}
	s := New(stubDB{}, mr, nil, Config{})

	if _, err := s.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	lead := mr.leads[0]
	if lead.Locale != "en" {
		t.Fatalf("default locale: got %q", lead.Locale)
	}
	if lead.Timezone != "Asia/Bangkok" {
		t.Fatalf("default timezone: got %q", lead.Timezone)
	}
}

func TestSubmit_ConfiguredTimezoneWins(t *testing.T) {
	t.Parallel()

	mr := &memRepo{}
	s := New(stubDB{}, mr, nil, Config{DefaultTimezone: "Europe/Paris"})

	if _, err := s.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if mr.leads[0].Timezone != "Europe/Paris" {
		t.Fatalf("timezone: got %q", mr.leads[0].Timezone)
	}
}

func TestSubmit_HoneypotRejectsBeforeAnyWrite(t *testing.T) {
	t.Parallel()

	mr := &memRepo{}
	n := &recordingNotifier{}
	s := New(stubDB{}, mr, n, Config{})

	in := validInput()
	in.Honeypot = "http://spam.example"

	if _, err := s.Submit(context.Background(), in); err == nil {
		t.Fatal("expected honeypot rejection")
	}
	if len(mr.leads) != 0 || len(mr.consents) != 0 || len(mr.events) != 0 {
		t.Fatal("no writes may happen for rejected spam")
	}
	if n.calls != 0 {
		t.Fatal("notifier must stay silent for rejected spam")
	}
}

func TestSubmit_ConsentRequired(t *testing.T) {
	t.Parallel()

	mr := &memRepo{}
	s := New(stubDB{}, mr, nil, Config{})

	in := validInput()
	in.Consent = false

	if _, err := s.Submit(context.Background(), in); err == nil {
		t.Fatal("expected consent rejection")
	}
	if len(mr.leads) != 0 {
		t.Fatal("no writes without consent")
	}
}

func TestSubmit_InsertFailurePropagates(t *testing.T) {
	t.Parallel()

	mr := &memRepo{failLead: errors.New("connection reset")}
	n := &recordingNotifier{}
	s := New(stubDB{}, mr, n, Config{})

	if _, err := s.Submit(context.Background(), validInput()); err == nil {
		t.Fatal("expected insert failure to propagate")
	}
	if n.calls != 0 {
		t.Fatal("notifier must not fire on failure")
	}
}

func TestExport_ReturnsStoredLeads(t *testing.T) {
	t.Parallel()

	mr := &memRepo{}
	s := New(stubDB{}, mr, nil, Config{})

	if _, err := s.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	rows, err := s.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(rows) != 1 || rows[0].FirstName != "Claire" {
		t.Fatalf("rows: %+v", rows)
	}
}
