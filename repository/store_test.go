package repository

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"main/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	notes := []model.Note{
		{ID: 1, Owner: "alice", Title: "First", Content: "one", Created: "2026-08-28"},
		{ID: 2, Owner: "bob", Title: "Second", Content: "two", Created: "2026-08-28"},
		{ID: 3, Owner: "alice", Title: "Third", Content: "three", Schedule: "2026-08-28T15:00", Created: "2026-08-28"},
	}

	if err := SaveCollection(store, NotesCollection, notes); err != nil {
		t.Fatalf("SaveCollection failed: %v", err)
	}

	loaded, err := LoadCollection[model.Note](store, NotesCollection)
	if err != nil {
		t.Fatalf("LoadCollection failed: %v", err)
	}

	if !reflect.DeepEqual(notes, loaded) {
		t.Errorf("Round trip mismatch:\nsaved:  %+v\nloaded: %+v", notes, loaded)
	}
}

func TestStoreMissingFile(t *testing.T) {
	store := newTestStore(t)

	if err := os.Remove(filepath.Join(store.Dir(), "notes.json")); err != nil {
		t.Fatalf("Failed to remove collection file: %v", err)
	}

	loaded, err := LoadCollection[model.Note](store, NotesCollection)
	if err != nil {
		t.Fatalf("LoadCollection failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected empty collection, got %d records", len(loaded))
	}
}

func TestStoreCorruptFile(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		name    string
		content string
	}{
		{"Invalid JSON", `{"not": "an array"`},
		{"Wrong shape", `{"not": "an array"}`},
		{"Empty file", ""},
		{"Whitespace only", "  \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(store.Dir(), "notes.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write file: %v", err)
			}

			loaded, err := LoadCollection[model.Note](store, NotesCollection)
			if err != nil {
				t.Fatalf("LoadCollection should recover, got error: %v", err)
			}
			if len(loaded) != 0 {
				t.Errorf("Expected empty collection, got %d records", len(loaded))
			}
		})
	}
}

func TestUpdateCollectionHoldsChanges(t *testing.T) {
	store := newTestStore(t)

	err := UpdateCollection(store, NotesCollection, func(notes []model.Note) ([]model.Note, error) {
		return append(notes, model.Note{ID: 1, Owner: "alice", Title: "kept"}), nil
	})
	if err != nil {
		t.Fatalf("UpdateCollection failed: %v", err)
	}

	loaded, _ := LoadCollection[model.Note](store, NotesCollection)
	if len(loaded) != 1 || loaded[0].Title != "kept" {
		t.Errorf("Update not persisted, got %+v", loaded)
	}
}
