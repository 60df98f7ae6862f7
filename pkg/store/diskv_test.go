package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kotanikosei/Emo/pkg/event"
	"github.com/kotanikosei/Emo/pkg/feedback"
	"github.com/kotanikosei/Emo/pkg/user"
)

type testConfig struct{ path string }

func (c testConfig) BasePath() string  { return c.path }
func (c testConfig) APIURL() string    { return "" }
func (c testConfig) GeminiKey() string { return "" }
func (c testConfig) OpenAIKey() string { return "" }
func (c testConfig) ClaudeKey() string { return "" }

func newTestStore(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return p
}

func TestEventsRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	if got := p.Events(ctx); len(got) != 0 {
		t.Fatalf("fresh store should be empty, got %d events", len(got))
	}

	now := time.Date(2024, time.February, 14, 8, 30, 0, 0, time.UTC)
	e := event.New("2024-02-14", now)
	e.Title = "ランチ"
	e.Memo = "駅前のカフェ"
	e.Mood = event.Joy
	e.IsAllDay = false
	e.StartTime = "12:00"
	e.EndTime = "13:00"

	if err := p.SaveEvents([]event.Event{e}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.Events(ctx)
	if len(got) != 1 {
		t.Fatalf("expected 1 event after reload, got %d", len(got))
	}
	if got[0] != e {
		t.Fatalf("round-trip mismatch:\n saved %+v\n loaded %+v", e, got[0])
	}
}

func TestCorruptSlotDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	p, err := Load(testConfig{path: dir})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "luna_events"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupt slot: %v", err)
	}

	if got := p.Events(ctx); len(got) != 0 {
		t.Fatalf("corrupt slot should read as empty, got %d events", len(got))
	}
}

func TestFeedbackAppends(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	now := time.Now()
	if err := p.AppendFeedback(ctx, feedback.New("見やすい", "", now)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := p.AppendFeedback(ctx, feedback.New("", "週表示が重い", now)); err != nil {
		t.Fatalf("append: %v", err)
	}

	all := p.Feedback(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(all))
	}
	if all[0].Good != "見やすい" || all[1].Improve != "週表示が重い" {
		t.Fatalf("unexpected order or content: %+v", all)
	}
}

func TestUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	roster := []user.User{
		{ID: 1, Name: "小谷", Initial: "小", Email: "demo@emocal.com", Password: "000", Status: user.StatusActive},
	}
	if err := p.SaveUsers(roster); err != nil {
		t.Fatalf("save users: %v", err)
	}
	got := p.Users(ctx)
	if len(got) != 1 || got[0] != roster[0] {
		t.Fatalf("unexpected roster after reload: %+v", got)
	}
}

func TestTokenLifecycle(t *testing.T) {
	p := newTestStore(t)

	if _, ok := p.Token(); ok {
		t.Fatalf("fresh store should have no token")
	}
	if err := p.SetToken("fallback-token"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if tok, ok := p.Token(); !ok || tok != "fallback-token" {
		t.Fatalf("expected stored token, got %q (ok=%v)", tok, ok)
	}
	if err := p.ClearToken(); err != nil {
		t.Fatalf("clear token: %v", err)
	}
	if _, ok := p.Token(); ok {
		t.Fatalf("token should be gone after clear")
	}
	if err := p.ClearToken(); err != nil {
		t.Fatalf("clearing an absent token should be a no-op, got %v", err)
	}
}
