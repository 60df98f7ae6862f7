package reply

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func names(chain []Generator) []string {
	out := make([]string, len(chain))
	for i, g := range chain {
		out[i] = g.Name()
	}
	return out
}

func TestResolveOrderAndPlaceholders(t *testing.T) {
	chain := Resolve(Config{GeminiKey: "g", OpenAIKey: "o", ClaudeKey: "c"})
	got := names(chain)
	want := []string{"gemini", "openai", "claude"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}

	chain = Resolve(Config{GeminiKey: "your_api_key_here", OpenAIKey: "undefined", ClaudeKey: "  "})
	if len(chain) != 0 {
		t.Fatalf("placeholder keys must not configure providers, got %v", names(chain))
	}

	chain = Resolve(Config{ClaudeKey: "real-key"})
	if len(chain) != 1 || chain[0].Name() != "claude" {
		t.Fatalf("expected only claude, got %v", names(chain))
	}
}

type stubGenerator struct {
	name string
	text string
	err  error
}

func (s stubGenerator) Name() string { return s.name }
func (s stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func TestChainFallsThroughFailures(t *testing.T) {
	c := &Chain{Providers: []Generator{
		stubGenerator{name: "a", err: errors.New("boom")},
		stubGenerator{name: "b", text: "  ありがとうございます！  "},
		stubGenerator{name: "c", text: "never reached"},
	}}
	got := c.Reply(context.Background(), "使いやすい", "")
	if got != "ありがとうございます！" {
		t.Fatalf("expected the first successful provider's text, got %q", got)
	}
}

func TestChainFallsBackToCanned(t *testing.T) {
	c := &Chain{Providers: []Generator{
		stubGenerator{name: "a", err: errors.New("down")},
		stubGenerator{name: "b", text: ""},
	}}
	got := c.Reply(context.Background(), "使いやすい", "週表示")
	found := false
	for _, s := range fallbackBoth {
		if got == s {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a canned both-inputs response, got %q", got)
	}
}

func TestFallbackConditionedOnInputs(t *testing.T) {
	for i := 0; i < 20; i++ {
		if got := Fallback("良い", ""); !contains(fallbackGood, got) {
			t.Fatalf("good-only fallback out of set: %q", got)
		}
		if got := Fallback("", "改善"); !contains(fallbackImprove, got) {
			t.Fatalf("improve-only fallback out of set: %q", got)
		}
		if got := Fallback("a", "b"); !contains(fallbackBoth, got) {
			t.Fatalf("both fallback out of set: %q", got)
		}
	}
	if got := Fallback("", ""); got != fallbackDefault {
		t.Fatalf("expected the default message, got %q", got)
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func TestPromptIncludesProvidedInputs(t *testing.T) {
	p := Prompt("デザインが良い", "")
	if !strings.Contains(p, "デザインが良い") {
		t.Fatalf("prompt missing the good input: %q", p)
	}
	if strings.Contains(p, "改善してほしい点") {
		t.Fatalf("prompt should omit the empty improve section: %q", p)
	}
}
