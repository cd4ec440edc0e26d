package module

import (
	"time"

	"leadimmo/internal/core/ratelimit"
	"leadimmo/internal/platform/config"
	"leadimmo/internal/services/leads/domain"
)

// Options controls submission throttling and defaults
type Options struct {
	RateLimit       int
	RateWindow      time.Duration
	DefaultTimezone string
}

// FromConfig reads with LEADS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("LEADS_")
	return Options{
		RateLimit:       c.MayInt("RATE_LIMIT", ratelimit.DefaultLimit),
		RateWindow:      c.MayDuration("RATE_WINDOW", ratelimit.DefaultWindow),
		DefaultTimezone: c.MayString("DEFAULT_TIMEZONE", domain.DefaultTimezone),
	}
}
