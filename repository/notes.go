package repository

import (
	"fmt"
	"strings"

	"main/model"
)

type NotesRepo struct {
	Store *Store
}

func GetNotesRepo(store *Store) *NotesRepo {
	return &NotesRepo{Store: store}
}

// CreateNote appends a note, assigning the next id (max existing + 1).
func (r *NotesRepo) CreateNote(note *model.Note) error {
	if note.Owner == "" {
		return fmt.Errorf("note owner is required")
	}

	return UpdateCollection(r.Store, NotesCollection, func(notes []model.Note) ([]model.Note, error) {
		note.ID = nextNoteID(notes)
		return append(notes, *note), nil
	})
}

func nextNoteID(notes []model.Note) int {
	max := 0
	for i := range notes {
		if notes[i].ID > max {
			max = notes[i].ID
		}
	}
	return max + 1
}

// GetUserNotes returns the user's notes in insertion order.
func (r *NotesRepo) GetUserNotes(username string) ([]model.Note, error) {
	notes, err := LoadCollection[model.Note](r.Store, NotesCollection)
	if err != nil {
		return nil, err
	}

	var owned []model.Note
	for i := range notes {
		if notes[i].Owner == username {
			owned = append(owned, notes[i])
		}
	}
	return owned, nil
}

// GetNote retrieves a specific note owned by the user.
func (r *NotesRepo) GetNote(id int, username string) (*model.Note, error) {
	notes, err := LoadCollection[model.Note](r.Store, NotesCollection)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].ID == id && notes[i].Owner == username {
			return &notes[i], nil
		}
	}
	return nil, ErrNoteNotFound
}

// UpdateNote edits a note in place. The id, owner and created day are fixed.
func (r *NotesRepo) UpdateNote(id int, username string, updates *model.Note) error {
	return UpdateCollection(r.Store, NotesCollection, func(notes []model.Note) ([]model.Note, error) {
		for i := range notes {
			if notes[i].ID == id && notes[i].Owner == username {
				notes[i].Title = updates.Title
				notes[i].Category = updates.Category
				notes[i].Content = updates.Content
				notes[i].Schedule = updates.Schedule
				return notes, nil
			}
		}
		return nil, ErrNoteNotFound
	})
}

// DeleteNote filters the note out of the collection.
func (r *NotesRepo) DeleteNote(id int, username string) error {
	return UpdateCollection(r.Store, NotesCollection, func(notes []model.Note) ([]model.Note, error) {
		kept := notes[:0]
		found := false
		for i := range notes {
			if notes[i].ID == id && notes[i].Owner == username {
				found = true
				continue
			}
			kept = append(kept, notes[i])
		}
		if !found {
			return nil, ErrNoteNotFound
		}
		return kept, nil
	})
}

// SearchNotes matches the query case-insensitively against title and content.
func (r *NotesRepo) SearchNotes(username, query string) ([]model.Note, error) {
	notes, err := r.GetUserNotes(username)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return notes, nil
	}

	query = strings.ToLower(query)
	var matched []model.Note
	for i := range notes {
		if strings.Contains(strings.ToLower(notes[i].Title), query) ||
			strings.Contains(strings.ToLower(notes[i].Content), query) {
			matched = append(matched, notes[i])
		}
	}
	return matched, nil
}

// CountUserNotes counts the number of notes for a user.
func (r *NotesRepo) CountUserNotes(username string) (int, error) {
	notes, err := r.GetUserNotes(username)
	if err != nil {
		return 0, err
	}
	return len(notes), nil
}
