package usecase

import (
	"strings"
	"testing"
	"time"

	"main/model"
	"main/repository"
)

func newNotesService(t *testing.T) *NotesService {
	t.Helper()
	store, err := repository.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return &NotesService{
		NotesRepo: repository.GetNotesRepo(store),
		Now:       func() time.Time { return time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local) },
	}
}

func TestCreateNoteStampsCreationDay(t *testing.T) {
	svc := newNotesService(t)

	note := &model.Note{Owner: "alice", Title: "  Groceries  ", Content: "milk"}
	if err := svc.CreateNote(note); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if note.Created != "2026-08-28" {
		t.Errorf("Created = %q, want 2026-08-28", note.Created)
	}
	if note.Title != "Groceries" {
		t.Errorf("Title should be trimmed, got %q", note.Title)
	}
}

func TestCreateNoteValidation(t *testing.T) {
	svc := newNotesService(t)

	tests := []struct {
		name string
		note model.Note
	}{
		{"Empty title", model.Note{Owner: "alice", Content: "x"}},
		{"Whitespace title", model.Note{Owner: "alice", Title: "   ", Content: "x"}},
		{"Title too long", model.Note{Owner: "alice", Title: strings.Repeat("a", 201), Content: "x"}},
		{"Empty content", model.Note{Owner: "alice", Title: "ok"}},
		{"Content too long", model.Note{Owner: "alice", Title: "ok", Content: strings.Repeat("a", 50001)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := tt.note
			if err := svc.CreateNote(&note); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestCreateNoteAcceptsFreeFormSchedule(t *testing.T) {
	svc := newNotesService(t)

	note := &model.Note{Owner: "alice", Title: "ok", Content: "x", Schedule: "whenever"}
	if err := svc.CreateNote(note); err != nil {
		t.Errorf("Unparseable schedule should be accepted: %v", err)
	}
}

func TestGetUserNotesWithQuery(t *testing.T) {
	svc := newNotesService(t)
	svc.CreateNote(&model.Note{Owner: "alice", Title: "Groceries", Content: "milk"})
	svc.CreateNote(&model.Note{Owner: "alice", Title: "Workout", Content: "run"})

	all, err := svc.GetUserNotes("alice", "")
	if err != nil {
		t.Fatalf("GetUserNotes failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 notes, got %d", len(all))
	}

	filtered, err := svc.GetUserNotes("alice", "milk")
	if err != nil {
		t.Fatalf("GetUserNotes failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Title != "Groceries" {
		t.Errorf("Expected the groceries note, got %+v", filtered)
	}
}

func TestEventsService(t *testing.T) {
	store, err := repository.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	svc := &EventsService{
		EventsRepo: repository.GetEventsRepo(store),
		Now:        func() time.Time { return time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local) },
	}

	if err := svc.CreateEvent(&model.Event{Owner: "alice", Title: "", Time: "2026-08-29T10:00"}); err == nil {
		t.Error("Empty title should fail")
	}
	if err := svc.CreateEvent(&model.Event{Owner: "alice", Title: "Meet"}); err == nil {
		t.Error("Empty time should fail")
	}

	// The time string is stored as-is; parsing happens at notification time.
	event := &model.Event{Owner: "alice", Title: "Meet", Time: "someday"}
	if err := svc.CreateEvent(event); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if event.Created != "2026-08-28" {
		t.Errorf("Created = %q, want 2026-08-28", event.Created)
	}

	events, _ := svc.GetUserEvents("alice")
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}

	if err := svc.DeleteEvent(event.ID, "alice"); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
	events, _ = svc.GetUserEvents("alice")
	if len(events) != 0 {
		t.Errorf("Expected no events after delete, got %d", len(events))
	}
}
