package usecase

import (
	"testing"
	"time"

	"main/model"
	"main/repository"
)

func newNotificationService(t *testing.T) *NotificationService {
	t.Helper()
	store, err := repository.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return &NotificationService{
		NotesRepo:  repository.GetNotesRepo(store),
		EventsRepo: repository.GetEventsRepo(store),
	}
}

func TestSoonBoundaries(t *testing.T) {
	tests := []struct {
		name        string
		secondsLeft int64
		expected    bool
	}{
		{"Due right now", 0, false},
		{"One second ahead", 1, true},
		{"Exactly one hour", 3600, true},
		{"Just past one hour", 3601, false},
		{"Overdue", -300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := soon(tt.secondsLeft); got != tt.expected {
				t.Errorf("soon(%d) = %v, want %v", tt.secondsLeft, got, tt.expected)
			}
		})
	}
}

func TestComputeNotifications(t *testing.T) {
	svc := newNotificationService(t)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	svc.EventsRepo.CreateEvent(&model.Event{Owner: "alice", Title: "Standup", Details: "daily", Time: "2026-08-28T12:30"})
	svc.EventsRepo.CreateEvent(&model.Event{Owner: "alice", Title: "Review", Time: "2026-08-28T14:00"})
	svc.EventsRepo.CreateEvent(&model.Event{Owner: "alice", Title: "Broken", Time: "not-a-date"})
	svc.NotesRepo.CreateNote(&model.Note{Owner: "alice", Title: "Call mom", Category: "family", Content: "x", Schedule: "2026-08-28T12:45"})
	svc.NotesRepo.CreateNote(&model.Note{Owner: "alice", Title: "Plain", Content: "no schedule"})
	svc.NotesRepo.CreateNote(&model.Note{Owner: "bob", Title: "Other", Content: "x", Schedule: "2026-08-28T12:10"})

	notifications, err := svc.ComputeNotifications("alice", now)
	if err != nil {
		t.Fatalf("ComputeNotifications failed: %v", err)
	}

	// Broken event, unscheduled note, and bob's note all drop out.
	if len(notifications) != 3 {
		t.Fatalf("Expected 3 notifications, got %d: %+v", len(notifications), notifications)
	}

	// Events first, then notes, each in collection order.
	if notifications[0].ID != "event-1" || notifications[1].ID != "event-2" || notifications[2].ID != "note-1" {
		t.Errorf("Wrong ordering: %s, %s, %s",
			notifications[0].ID, notifications[1].ID, notifications[2].ID)
	}

	standup := notifications[0]
	if standup.SecondsLeft != 1800 {
		t.Errorf("Standup seconds left = %d, want 1800", standup.SecondsLeft)
	}
	if !standup.Soon {
		t.Error("Standup in 30 minutes should be soon")
	}
	if standup.Details != "daily" {
		t.Errorf("Standup details = %q, want %q", standup.Details, "daily")
	}
	if standup.Time != "2026-08-28 12:30" {
		t.Errorf("Standup display time = %q", standup.Time)
	}

	review := notifications[1]
	if review.Soon {
		t.Error("Review in 2 hours should not be soon")
	}

	note := notifications[2]
	if note.Title != "Note: Call mom" {
		t.Errorf("Note title = %q, want %q", note.Title, "Note: Call mom")
	}
	if note.Details != "family" {
		t.Errorf("Note details carry the category, got %q", note.Details)
	}
	if !note.Soon {
		t.Error("Note in 45 minutes should be soon")
	}
}

func TestComputeNotificationsEmpty(t *testing.T) {
	svc := newNotificationService(t)

	notifications, err := svc.ComputeNotifications("alice", time.Now())
	if err != nil {
		t.Fatalf("ComputeNotifications failed: %v", err)
	}
	if notifications == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(notifications) != 0 {
		t.Errorf("Expected no notifications, got %d", len(notifications))
	}
}

func TestNotificationCountMatchesSoonEntries(t *testing.T) {
	svc := newNotificationService(t)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	svc.EventsRepo.CreateEvent(&model.Event{Owner: "alice", Title: "A", Time: "2026-08-28T12:30"})
	svc.EventsRepo.CreateEvent(&model.Event{Owner: "alice", Title: "B", Time: "2026-08-28T18:00"})
	svc.NotesRepo.CreateNote(&model.Note{Owner: "alice", Title: "C", Content: "x", Schedule: "2026-08-28T12:59"})
	svc.NotesRepo.CreateNote(&model.Note{Owner: "alice", Title: "D", Content: "x", Schedule: "2026-08-28T11:00"})

	count, err := svc.NotificationCount("alice", now)
	if err != nil {
		t.Fatalf("NotificationCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 soon notifications, got %d", count)
	}

	notifications, _ := svc.ComputeNotifications("alice", now)
	soonTotal := 0
	for i := range notifications {
		if notifications[i].Soon {
			soonTotal++
		}
	}
	if count != soonTotal {
		t.Errorf("Count %d disagrees with detail list %d", count, soonTotal)
	}
}
