// Package domain holds DTOs and contracts for the leads service
package domain

import "time"

const (
	// ConsentTextVersion is the consent text revision recorded with every lead
	ConsentTextVersion = "v1-pdpa-fr"

	// EventLeadSubmit is the event type recorded on submission
	EventLeadSubmit = "lead_submit"

	// DefaultLocale applies when the form omits one
	DefaultLocale = "en"

	// DefaultTimezone applies when the form omits one and config has no override
	DefaultTimezone = "Asia/Bangkok"
)

// LeadInput is the public submission payload
type LeadInput struct {
	FirstName      string   `json:"first_name"      validate:"required,min=2,max=60"`
	Phone          string   `json:"phone"           validate:"required,min=6,max=40"`
	Email          string   `json:"email"           validate:"omitempty,email"`
	Budget         string   `json:"budget"          validate:"omitempty,max=120"`
	PropertyType   string   `json:"property_type"   validate:"omitempty,max=120"`
	Areas          []string `json:"areas"           validate:"omitempty,dive,max=120"`
	Timing         string   `json:"timing"          validate:"omitempty,max=120"`
	CallPreference string   `json:"call_preference" validate:"omitempty,max=120"`
	Timezone       string   `json:"timezone"        validate:"omitempty,max=64"`
	Message        string   `json:"message"         validate:"omitempty,max=2000"`
	Locale         string   `json:"locale"          validate:"omitempty,oneof=en th fr es zh"`
	Consent        bool     `json:"consent"         validate:"required"`

	// Honeypot must stay empty; bots that fill it are rejected
	Honeypot string `json:"_hpt"`
}

// SubmitOutput acknowledges a stored lead
type SubmitOutput struct {
	Success bool   `json:"success"`
	LeadID  string `json:"lead_id"`
}

// ExportRow is one lead flattened for CSV export
type ExportRow struct {
	ID             string
	CreatedAt      time.Time
	FirstName      string
	Phone          string
	Email          string
	Budget         string
	PropertyType   string
	Areas          []string
	Timing         string
	CallPreference string
	Timezone       string
	ConsentVersion string
}
