package module

import (
	"time"

	"leadimmo/internal/platform/config"
	"leadimmo/internal/services/translator/llm"
)

// Options controls upstream translator connectivity
type Options struct {
	APIKey  string
	APIURL  string
	Model   string
	Timeout time.Duration
}

// FromConfig reads with TRANSLATE_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("TRANSLATE_")
	return Options{
		APIKey:  c.MayString("API_KEY", ""),
		APIURL:  c.MayString("API_URL", llm.DefaultEndpoint),
		Model:   c.MayString("MODEL", llm.DefaultModel),
		Timeout: c.MayDuration("TIMEOUT", 30*time.Second),
	}
}
