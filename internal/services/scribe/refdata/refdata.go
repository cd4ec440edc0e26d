// Package refdata loads the embedded keyword and pillar collections the
// draft generator composes from
package refdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed keywords.json
var keywordsRaw []byte

//go:embed pillars.json
var pillarsRaw []byte

// Keyword is one market theme a draft can be built around
type Keyword struct {
	Primary  string   `json:"primary"`
	Context  string   `json:"context"`
	Signals  []string `json:"signals"`
	SEOTerms []string `json:"seo_terms"`
}

// Pillar is long-form reference material drafts borrow structure from
type Pillar struct {
	Title    string   `json:"title"`
	BodyHTML string   `json:"body_html"`
	SEOTerms []string `json:"seo_terms"`
}

// Load parses both embedded collections and validates they are non-empty
func Load() ([]Keyword, []Pillar, error) {
	var kws []Keyword
	if err := json.Unmarshal(keywordsRaw, &kws); err != nil {
		return nil, nil, fmt.Errorf("refdata: parse keywords.json: %w", err)
	}
	var ps []Pillar
	if err := json.Unmarshal(pillarsRaw, &ps); err != nil {
		return nil, nil, fmt.Errorf("refdata: parse pillars.json: %w", err)
	}
	if len(kws) == 0 || len(ps) == 0 {
		return nil, nil, fmt.Errorf("refdata: empty collections (keywords=%d pillars=%d)", len(kws), len(ps))
	}
	for i, k := range kws {
		if k.Primary == "" || k.Context == "" {
			return nil, nil, fmt.Errorf("refdata: keyword %d missing primary or context", i)
		}
	}
	for i, p := range ps {
		if p.Title == "" || p.BodyHTML == "" {
			return nil, nil, fmt.Errorf("refdata: pillar %d missing title or body", i)
		}
	}
	return kws, ps, nil
}

// MustLoad is Load that panics on malformed embedded data
func MustLoad() ([]Keyword, []Pillar) {
	kws, ps, err := Load()
	if err != nil {
		panic(err)
	}
	return kws, ps
}
