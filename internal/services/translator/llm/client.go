// Package llm is the chat-completions client used for machine translation
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "leadimmo/internal/platform/errors"
	"leadimmo/internal/services/translator/domain"
)

// DefaultEndpoint is the chat-completions URL used when none is configured
const DefaultEndpoint = "https://api.openai.com/v1/chat/completions"

// DefaultModel is the model used when none is configured
const DefaultModel = "gpt-4o-mini"

// translations run low-temperature for stable phrasing
const temperature = 0.2

// Config carries upstream connectivity knobs
type Config struct {
	APIKey  string
	APIURL  string
	Model   string
	Timeout time.Duration
}

// Translation is the parsed upstream answer
type Translation struct {
	Title    string  `json:"title"`
	Excerpt  *string `json:"excerpt"`
	BodyHTML string  `json:"bodyHtml"`
}

// Client calls a chat-completions endpoint and parses the strict-JSON answer
type Client struct {
	cfg Config
	hc  *http.Client
}

// New constructs a Client, applying endpoint/model/timeout defaults
func New(cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Configured reports whether an API key is present.
// An unconfigured client is the documented trigger for the fallback branch
func (c *Client) Configured() bool { return c != nil && c.cfg.APIKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// userPayload is the serialized object embedded in the user prompt
type userPayload struct {
	Title        string  `json:"title"`
	Excerpt      *string `json:"excerpt"`
	BodyHTML     string  `json:"bodyHtml"`
	TargetLocale string  `json:"targetLocale"`
}

// Translate issues one upstream request for the payload's target locale.
// Non-2xx status, a missing content field, or unparseable content JSON are
// all errors; the caller converts them into fallback results
func (c *Client) Translate(ctx context.Context, p domain.Payload) (Translation, error) {
	system := "You are a professional real-estate copywriter translating English marketing copy into " +
		domain.LanguageName(p.TargetLocale) +
		". Preserve all HTML tags (<p>, <h2>, <h3>, <ul>, <li>, <strong>, <em>) and keep sentences concise."

	serialized, err := json.Marshal(userPayload{
		Title:        p.Title,
		Excerpt:      p.Excerpt,
		BodyHTML:     p.BodyHTML,
		TargetLocale: p.TargetLocale,
	})
	if err != nil {
		return Translation{}, perr.Wrap(err, perr.ErrorCodeUnknown, "marshal translation payload")
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Temperature: temperature,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{
				Role: "user",
				Content: "Translate the JSON payload. Answer strictly as JSON with keys title, excerpt, bodyHtml. " +
					string(serialized),
			},
		},
	})
	if err != nil {
		return Translation{}, perr.Wrap(err, perr.ErrorCodeUnknown, "marshal chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return Translation{}, perr.Wrap(err, perr.ErrorCodeUnknown, "build chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return Translation{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "translation request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return Translation{}, perr.Unavailablef("translation request failed with status %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return Translation{}, perr.JSONErrf("decode translation response: %v", err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return Translation{}, perr.JSONErrf("missing translation content")
	}

	var out Translation
	if err := json.Unmarshal([]byte(cr.Choices[0].Message.Content), &out); err != nil {
		return Translation{}, perr.JSONErrf("translation content is not valid JSON")
	}
	return out, nil
}
