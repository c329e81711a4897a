package repository

import (
	"fmt"

	"main/model"
)

type EventsRepo struct {
	Store *Store
}

func GetEventsRepo(store *Store) *EventsRepo {
	return &EventsRepo{Store: store}
}

// CreateEvent appends an event, assigning the next id (max existing + 1).
func (r *EventsRepo) CreateEvent(event *model.Event) error {
	if event.Owner == "" {
		return fmt.Errorf("event owner is required")
	}

	return UpdateCollection(r.Store, ScheduleCollection, func(events []model.Event) ([]model.Event, error) {
		max := 0
		for i := range events {
			if events[i].ID > max {
				max = events[i].ID
			}
		}
		event.ID = max + 1
		return append(events, *event), nil
	})
}

// GetUserEvents returns the user's events in insertion order.
func (r *EventsRepo) GetUserEvents(username string) ([]model.Event, error) {
	events, err := LoadCollection[model.Event](r.Store, ScheduleCollection)
	if err != nil {
		return nil, err
	}

	var owned []model.Event
	for i := range events {
		if events[i].Owner == username {
			owned = append(owned, events[i])
		}
	}
	return owned, nil
}

// DeleteEvent filters the event out of the collection. Events have no edit
// operation; create and delete only.
func (r *EventsRepo) DeleteEvent(id int, username string) error {
	return UpdateCollection(r.Store, ScheduleCollection, func(events []model.Event) ([]model.Event, error) {
		kept := events[:0]
		found := false
		for i := range events {
			if events[i].ID == id && events[i].Owner == username {
				found = true
				continue
			}
			kept = append(kept, events[i])
		}
		if !found {
			return nil, ErrEventNotFound
		}
		return kept, nil
	})
}

// CountUserEvents counts the number of events for a user.
func (r *EventsRepo) CountUserEvents(username string) (int, error) {
	events, err := r.GetUserEvents(username)
	if err != nil {
		return 0, err
	}
	return len(events), nil
}
