package module

import (
	"leadimmo/internal/platform/config"
	"leadimmo/internal/services/scribe/domain"
)

// Options controls generation policy
type Options struct {
	PublishStatus        string
	AutoTranslateLocales []string
	Category             string
}

// FromConfig reads with SCRIBE_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("SCRIBE_")
	return Options{
		PublishStatus:        c.MayEnum("PUBLISH_STATUS", domain.StatusDraft, domain.StatusDraft, domain.StatusPublished),
		AutoTranslateLocales: c.MayCSV("AUTO_TRANSLATE_LOCALES", nil),
		Category:             c.MayString("CATEGORY", "market"),
	}
}
