// Package reply drafts a thank-you response to user feedback. Providers are
// resolved once at startup from configured API keys into an ordered chain
// behind one Generator interface; when every provider fails or none is
// configured, a canned response is substituted. No failure in this path ever
// reaches the user as an error.
package reply

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// RequestTimeout bounds each provider call.
const RequestTimeout = 10 * time.Second

// Generator produces reply text for a prompt.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config carries the provider credentials.
type Config struct {
	GeminiKey string
	OpenAIKey string
	ClaudeKey string

	// HTTPClient overrides the default client, for tests.
	HTTPClient *http.Client
}

// placeholders that do not count as a configured key.
var placeholders = map[string]bool{
	"":                  true,
	"undefined":         true,
	"your_api_key_here": true,
}

func configured(key string) bool {
	return !placeholders[strings.TrimSpace(key)]
}

// Resolve builds the ordered provider chain from the configured keys:
// Gemini, then OpenAI, then Claude. Unconfigured providers are left out, so
// an empty chain means "straight to the canned fallback".
func Resolve(cfg Config) []Generator {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: RequestTimeout}
	}
	chain := make([]Generator, 0, 3)
	if configured(cfg.GeminiKey) {
		chain = append(chain, &gemini{key: strings.TrimSpace(cfg.GeminiKey), http: client})
	}
	if configured(cfg.OpenAIKey) {
		chain = append(chain, &openAI{key: strings.TrimSpace(cfg.OpenAIKey), http: client})
	}
	if configured(cfg.ClaudeKey) {
		chain = append(chain, &claude{key: strings.TrimSpace(cfg.ClaudeKey), http: client})
	}
	return chain
}

// Chain tries each provider in order and falls back to canned text.
type Chain struct {
	Providers []Generator
}

// Reply drafts the response for one feedback submission.
func (c *Chain) Reply(ctx context.Context, good, improve string) string {
	prompt := Prompt(good, improve)
	for _, p := range c.Providers {
		text, err := p.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
	}
	return Fallback(good, improve)
}

// Prompt renders the generation request for a submission.
func Prompt(good, improve string) string {
	var b strings.Builder
	b.WriteString("あなたはカレンダーアプリの開発チームの一員です。ユーザーから届いたフィードバックに、感謝を伝える短い返信（2〜3文、日本語）を書いてください。\n")
	if strings.TrimSpace(good) != "" {
		fmt.Fprintf(&b, "良かった点: %s\n", good)
	}
	if strings.TrimSpace(improve) != "" {
		fmt.Fprintf(&b, "改善してほしい点: %s\n", improve)
	}
	b.WriteString("返信文のみを出力してください。")
	return b.String()
}
