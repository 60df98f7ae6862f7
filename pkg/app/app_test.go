package app

import (
	"context"
	"testing"
	"time"

	"github.com/kotanikosei/Emo/pkg/editor"
	"github.com/kotanikosei/Emo/pkg/event"
	"github.com/kotanikosei/Emo/pkg/feedback"
	"github.com/kotanikosei/Emo/pkg/user"
)

// fakePersistence keeps everything in memory for service tests.
type fakePersistence struct {
	events   []event.Event
	feedback []feedback.Feedback
	users    []user.User
	token    string
}

func (f *fakePersistence) Events(ctx context.Context) []event.Event { return f.events }
func (f *fakePersistence) SaveEvents(events []event.Event) error {
	f.events = events
	return nil
}
func (f *fakePersistence) Feedback(ctx context.Context) []feedback.Feedback { return f.feedback }
func (f *fakePersistence) AppendFeedback(ctx context.Context, fb feedback.Feedback) error {
	f.feedback = append(f.feedback, fb)
	return nil
}
func (f *fakePersistence) Users(ctx context.Context) []user.User { return f.users }
func (f *fakePersistence) SaveUsers(users []user.User) error {
	f.users = users
	return nil
}
func (f *fakePersistence) Token() (string, bool) { return f.token, f.token != "" }
func (f *fakePersistence) SetToken(token string) error {
	f.token = token
	return nil
}
func (f *fakePersistence) ClearToken() error {
	f.token = ""
	return nil
}

func TestSaveCreatesAndUpdates(t *testing.T) {
	ctx := context.Background()
	fp := &fakePersistence{}
	svc := &Service{Persistence: fp}

	created, err := svc.Save(ctx, editor.Draft{Date: "2024-02-14", Title: "ランチ", Mood: event.Joy})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(fp.events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(fp.events))
	}

	d := editor.FromEvent(created)
	d.Title = "ディナー"
	updated, err := svc.Save(ctx, d)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(fp.events) != 1 {
		t.Fatalf("update must replace in place, got %d events", len(fp.events))
	}
	if updated.ID != created.ID || fp.events[0].Title != "ディナー" {
		t.Fatalf("unexpected update result: %+v", fp.events[0])
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	fp := &fakePersistence{events: []event.Event{
		{ID: "keep", Date: "2024-02-14", Title: "a", Mood: event.NoMood, IsAllDay: true},
		{ID: "drop", Date: "2024-02-14", Title: "b", Mood: event.NoMood, IsAllDay: true},
	}}
	svc := &Service{Persistence: fp}

	if err := svc.Delete(ctx, "drop"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(fp.events) != 1 || fp.events[0].ID != "keep" {
		t.Fatalf("unexpected remainder: %+v", fp.events)
	}
	if err := svc.Delete(ctx, "drop"); err == nil {
		t.Fatalf("deleting a missing id must error")
	}
}

func TestWeekGroupsPerDay(t *testing.T) {
	ctx := context.Background()
	fp := &fakePersistence{events: []event.Event{
		{ID: "sun", Date: "2024-02-11", Title: "a", Mood: event.NoMood, IsAllDay: true},
		{ID: "wed", Date: "2024-02-14", Title: "b", Mood: event.NoMood, IsAllDay: true},
		{ID: "out", Date: "2024-02-18", Title: "c", Mood: event.NoMood, IsAllDay: true},
	}}
	svc := &Service{Persistence: fp}

	days, perDay, err := svc.Week(ctx, time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("week: %v", err)
	}
	if len(days) != 7 || len(perDay) != 7 {
		t.Fatalf("expected 7 days, got %d/%d", len(days), len(perDay))
	}
	if len(perDay[0]) != 1 || perDay[0][0].ID != "sun" {
		t.Fatalf("expected sunday event first, got %+v", perDay[0])
	}
	if len(perDay[3]) != 1 || perDay[3][0].ID != "wed" {
		t.Fatalf("expected wednesday event at index 3, got %+v", perDay[3])
	}
	if len(perDay[6]) != 0 {
		t.Fatalf("the following sunday belongs to the next week")
	}
}

func TestSubmitFeedback(t *testing.T) {
	ctx := context.Background()
	fp := &fakePersistence{}
	svc := &Service{Persistence: fp}

	if _, err := svc.SubmitFeedback(ctx, "", ""); err == nil {
		t.Fatalf("empty feedback must be rejected")
	}
	f, err := svc.SubmitFeedback(ctx, "使いやすい", "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.ID == "" || len(fp.feedback) != 1 {
		t.Fatalf("submission not persisted: %+v", fp.feedback)
	}
}

func TestRosterLifecycle(t *testing.T) {
	ctx := context.Background()
	fp := &fakePersistence{}
	svc := &Service{Persistence: fp}

	u, err := svc.AddUser(ctx, "小谷", "kotani@emocal.com", "secret")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if u.ID != 1 || u.Initial != "小" || u.Status != user.StatusActive {
		t.Fatalf("unexpected user: %+v", u)
	}
	if _, err := svc.AddUser(ctx, "別人", "kotani@emocal.com", "x"); err == nil {
		t.Fatalf("duplicate email must be rejected")
	}

	second, err := svc.AddUser(ctx, "Demo", "demo@emocal.com", "000")
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	if second.ID != 2 || second.Initial != "D" {
		t.Fatalf("unexpected second user: %+v", second)
	}

	if err := svc.SetUserStatus(ctx, 2, user.StatusSuspended); err != nil {
		t.Fatalf("suspend: %v", err)
	}
	if fp.users[1].Status != user.StatusSuspended {
		t.Fatalf("status not updated: %+v", fp.users[1])
	}

	if err := svc.RemoveUser(ctx, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(fp.users) != 1 || fp.users[0].ID != 2 {
		t.Fatalf("unexpected roster: %+v", fp.users)
	}
}
