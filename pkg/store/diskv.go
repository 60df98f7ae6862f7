// Package store persists the app's collections in a diskv key-value store.
// Each collection lives in a single slot holding a JSON array; a slot that is
// absent or fails to parse degrades to an empty collection, never an error
// surfaced to the user.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/kotanikosei/Emo/pkg/event"
	"github.com/kotanikosei/Emo/pkg/feedback"
	"github.com/kotanikosei/Emo/pkg/user"
)

// Slot keys. The events key matches the browser build's localStorage
// namespace so exported data drops in unchanged.
const (
	eventsSlot   = "luna_events"
	feedbackSlot = "luna_feedback"
	usersSlot    = "luna_users"
	tokenSlot    = "auth_token"
)

// Persistence is the durable store behind every view. Reads never fail:
// missing or corrupt slots come back as empty collections with the parse
// failure reported to stderr.
type Persistence interface {
	Events(ctx context.Context) []event.Event
	SaveEvents(events []event.Event) error
	Feedback(ctx context.Context) []feedback.Feedback
	AppendFeedback(ctx context.Context, f feedback.Feedback) error
	Users(ctx context.Context) []user.User
	SaveUsers(users []user.User) error
	Token() (string, bool)
	SetToken(token string) error
	ClearToken() error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil }, // flat layout
		CacheSizeMax: 1024 * 1024,                          // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// readSlot unmarshals a slot into target, treating absence and corruption as
// an untouched target.
func (p *persistence) readSlot(key string, target any) {
	data, err := p.d.Read(key)
	if err != nil {
		return // never written, start empty
	}
	if err := json.Unmarshal(data, target); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
	}
}

func (p *persistence) writeSlot(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Events(ctx context.Context) []event.Event {
	all := make([]event.Event, 0)
	p.readSlot(eventsSlot, &all)
	return all
}

func (p *persistence) SaveEvents(events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}
	return p.writeSlot(eventsSlot, events)
}

func (p *persistence) Feedback(ctx context.Context) []feedback.Feedback {
	all := make([]feedback.Feedback, 0)
	p.readSlot(feedbackSlot, &all)
	return all
}

func (p *persistence) AppendFeedback(ctx context.Context, f feedback.Feedback) error {
	all := p.Feedback(ctx)
	all = append(all, f)
	return p.writeSlot(feedbackSlot, all)
}

func (p *persistence) Users(ctx context.Context) []user.User {
	all := make([]user.User, 0)
	p.readSlot(usersSlot, &all)
	return all
}

func (p *persistence) SaveUsers(users []user.User) error {
	if users == nil {
		users = []user.User{}
	}
	return p.writeSlot(usersSlot, users)
}

func (p *persistence) Token() (string, bool) {
	data, err := p.d.Read(tokenSlot)
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (p *persistence) SetToken(token string) error {
	if token == "" {
		return errors.New("store: empty token")
	}
	if err := p.d.Write(tokenSlot, []byte(token)); err != nil {
		return fmt.Errorf("store: write token: %w", err)
	}
	return nil
}

func (p *persistence) ClearToken() error {
	if !p.d.Has(tokenSlot) {
		return nil
	}
	return p.d.Erase(tokenSlot)
}
