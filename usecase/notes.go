package usecase

import (
	"errors"
	"strings"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

type NotesService struct {
	NotesRepo *repository.NotesRepo

	Now func() time.Time
}

func (s *NotesService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *NotesService) validateNote(note *model.Note) error {
	note.Title = strings.TrimSpace(note.Title)
	if note.Title == "" {
		return errors.New("note title is required")
	}
	if len(note.Title) > 200 {
		return errors.New("note title exceeds maximum length")
	}

	if strings.TrimSpace(note.Content) == "" {
		return errors.New("note content is required")
	}
	if len(note.Content) > 50000 {
		return errors.New("note content exceeds maximum length")
	}

	// Schedule stays free-form: unparseable values are skipped by the
	// notification engine rather than rejected here.
	return nil
}

// CreateNote validates and stores a note, stamping the creation day.
func (s *NotesService) CreateNote(note *model.Note) error {
	if err := s.validateNote(note); err != nil {
		return err
	}
	note.Created = utils.Today(s.now())
	return s.NotesRepo.CreateNote(note)
}

// GetUserNotes lists the user's notes, optionally filtered by a search query.
func (s *NotesService) GetUserNotes(username, query string) ([]model.Note, error) {
	if query != "" {
		return s.NotesRepo.SearchNotes(username, query)
	}
	return s.NotesRepo.GetUserNotes(username)
}

// UpdateNote edits title, category, content and schedule in place.
func (s *NotesService) UpdateNote(id int, username string, updates *model.Note) error {
	if err := s.validateNote(updates); err != nil {
		return err
	}
	return s.NotesRepo.UpdateNote(id, username, updates)
}

func (s *NotesService) DeleteNote(id int, username string) error {
	return s.NotesRepo.DeleteNote(id, username)
}
