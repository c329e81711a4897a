package usecase

import (
	"errors"
	"strings"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

type EventsService struct {
	EventsRepo *repository.EventsRepo

	Now func() time.Time
}

func (s *EventsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateEvent validates and stores an event, stamping the creation day. The
// time field is required but deliberately not parsed here; the notification
// engine skips entries it cannot parse.
func (s *EventsService) CreateEvent(event *model.Event) error {
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return errors.New("event title is required")
	}
	if event.Time == "" {
		return errors.New("event time is required")
	}

	event.Created = utils.Today(s.now())
	return s.EventsRepo.CreateEvent(event)
}

func (s *EventsService) GetUserEvents(username string) ([]model.Event, error) {
	return s.EventsRepo.GetUserEvents(username)
}

func (s *EventsService) DeleteEvent(id int, username string) error {
	return s.EventsRepo.DeleteEvent(id, username)
}
