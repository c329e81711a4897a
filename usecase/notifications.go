package usecase

import (
	"fmt"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

// SoonWindow is how far ahead a due time may be to count as "soon".
const SoonWindow = time.Hour

// NotificationService derives the live list of upcoming due-items for a user.
// Results are recomputed against "now" on every call and never persisted.
type NotificationService struct {
	NotesRepo  *repository.NotesRepo
	EventsRepo *repository.EventsRepo

	Now func() time.Time
}

func (s *NotificationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ComputeNotifications scans the user's events and scheduled notes: events
// first, then notes, each in collection order. Items with unparseable
// timestamps are silently skipped. Overdue items are included with Soon=false.
func (s *NotificationService) ComputeNotifications(username string, now time.Time) ([]model.Notification, error) {
	events, err := s.EventsRepo.GetUserEvents(username)
	if err != nil {
		return nil, err
	}

	notifications := []model.Notification{}
	for i := range events {
		t, ok := utils.ParseTimestamp(events[i].Time)
		if !ok {
			continue
		}
		seconds := int64(t.Sub(now).Seconds())
		notifications = append(notifications, model.Notification{
			ID:          fmt.Sprintf("event-%d", events[i].ID),
			Title:       events[i].Title,
			Details:     events[i].Details,
			Time:        t.Format(utils.DisplayFormat),
			SecondsLeft: seconds,
			Soon:        soon(seconds),
		})
	}

	notes, err := s.NotesRepo.GetUserNotes(username)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].Schedule == "" {
			continue
		}
		t, ok := utils.ParseTimestamp(notes[i].Schedule)
		if !ok {
			continue
		}
		seconds := int64(t.Sub(now).Seconds())
		notifications = append(notifications, model.Notification{
			ID:          fmt.Sprintf("note-%d", notes[i].ID),
			Title:       "Note: " + notes[i].Title,
			Details:     notes[i].Category,
			Time:        t.Format(utils.DisplayFormat),
			SecondsLeft: seconds,
			Soon:        soon(seconds),
		})
	}

	return notifications, nil
}

// soon reports whether a due time is strictly in the future and at most one
// hour away. Zero seconds left is not soon; exactly 3600 is.
func soon(secondsLeft int64) bool {
	return secondsLeft > 0 && secondsLeft <= int64(SoonWindow/time.Second)
}

// NotificationCount counts the soon entries of ComputeNotifications. It is
// derived from the same scan, so it cannot drift from the detail list.
func (s *NotificationService) NotificationCount(username string, now time.Time) (int, error) {
	notifications, err := s.ComputeNotifications(username, now)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range notifications {
		if notifications[i].Soon {
			count++
		}
	}
	return count, nil
}
