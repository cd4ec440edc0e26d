// Package domain holds DTOs and contracts for the translator service
package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Source tags the provenance of a translation result
type Source string

const (
	// SourceMachine marks a genuine upstream translation
	SourceMachine Source = "machine"

	// SourceFallback marks a deterministic stand-in that still needs a real translation
	SourceFallback Source = "fallback"
)

// Markers appended to fallback content so consumers can detect pending work
const (
	MarkerNeeded = "[TRANSLATION NEEDED]"
	MarkerError  = "[TRANSLATION ERROR]"
)

// DefaultLocale is the authoring locale for all source content
const DefaultLocale = "en"

// localeTags fixes the supported target locales and their BCP 47 tags.
// The site authors in English and fans out to these four
var localeTags = map[string]language.Tag{
	"th": language.Thai,
	"fr": language.French,
	"es": language.Spanish,
	"zh": language.SimplifiedChinese,
}

// localeOrder keeps enumeration deterministic
var localeOrder = []string{"th", "fr", "es", "zh"}

// SupportedLocales returns the target locale codes in stable order
func SupportedLocales() []string {
	out := make([]string, len(localeOrder))
	copy(out, localeOrder)
	return out
}

// IsSupported reports whether code names a supported target locale
func IsSupported(code string) bool {
	_, ok := localeTags[code]
	return ok
}

// LanguageName returns the English display name for a supported locale,
// used when prompting the upstream translator ("Thai", "Simplified Chinese", ...)
func LanguageName(code string) string {
	tag, ok := localeTags[code]
	if !ok {
		return code
	}
	return display.English.Languages().Name(tag)
}

// Payload is the content handed to the translator for one target locale
type Payload struct {
	Title        string
	Excerpt      *string
	BodyHTML     string
	TargetLocale string
}

// Result is the translated or stand-in content for one target locale
type Result struct {
	Title    string  `json:"title"`
	Excerpt  *string `json:"excerpt,omitempty"`
	BodyHTML string  `json:"body_html"`
	Note     string  `json:"note,omitempty"`
	Source   Source  `json:"source"`
}
