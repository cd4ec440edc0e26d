// Package domain holds DTOs and contracts for the scribe service
package domain

// GenerateResult reports one completed draft generation
type GenerateResult struct {
	PostID            string   `json:"post_id"`
	Slug              string   `json:"slug"`
	TranslatedLocales []string `json:"translated_locales"`
}

// Statuses a generated draft may be persisted with
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)
