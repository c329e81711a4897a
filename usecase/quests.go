package usecase

import (
	"math/rand"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

// QuestDef is one entry of the fixed daily quest catalog.
type QuestDef struct {
	ID    string
	Label string
}

// QuestPool is the fixed catalog of five quests. Three are drawn per user per
// calendar day, uniformly without replacement.
var QuestPool = []QuestDef{
	{ID: "write_note", Label: "Write a note"},
	{ID: "add_event", Label: "Add a schedule event"},
	{ID: "check_notifications", Label: "Check notifications"},
	{ID: "use_darkmode", Label: "Use dark mode"},
	{ID: "edit_profile", Label: "Update your profile"},
}

const DailyQuestCount = 3

// QuestService maintains the per-day quest assignment and completion state.
// The clock and random source are injectable for tests.
type QuestService struct {
	UsersRepo  *repository.UsersRepo
	NotesRepo  *repository.NotesRepo
	EventsRepo *repository.EventsRepo

	Now  func() time.Time
	Rand *rand.Rand
}

func (s *QuestService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *QuestService) intn(n int) int {
	if s.Rand != nil {
		return s.Rand.Intn(n)
	}
	return rand.Intn(n)
}

// EnsureDailyAssignment regenerates the quest fields when the stored
// assignment is not for today, reporting whether a fresh draw happened.
// Repeated calls within the same day are no-ops. Yesterday's incomplete
// quests are discarded; history is not retained.
func (s *QuestService) EnsureDailyAssignment(user *model.User, today string) bool {
	if user.QuestsFresh(today) {
		return false
	}

	drawn := s.drawQuests(DailyQuestCount)
	user.Quests = make(map[string]bool, len(drawn))
	user.QuestLabels = make(map[string]string, len(drawn))
	for _, q := range drawn {
		user.Quests[q.ID] = false
		user.QuestLabels[q.ID] = q.Label
	}
	user.QuestDate = today
	return true
}

// drawQuests picks n distinct pool entries via a partial Fisher-Yates shuffle.
func (s *QuestService) drawQuests(n int) []QuestDef {
	pool := make([]QuestDef, len(QuestPool))
	copy(pool, QuestPool)
	for i := 0; i < n; i++ {
		j := i + s.intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// ApplyDerivedCompletion marks assigned quests complete from read-only
// observations of the user's data and session flags. It only ever ORs
// completions in; a true flag is never reset to false.
func (s *QuestService) ApplyDerivedCompletion(user *model.User, today string, flags model.Flags) error {
	if user.Quests == nil {
		user.Quests = make(map[string]bool)
	}

	if done, assigned := user.Quests["write_note"]; assigned && !done {
		notes, err := s.NotesRepo.GetUserNotes(user.Username)
		if err != nil {
			return err
		}
		for i := range notes {
			if notes[i].Created == today {
				user.Quests["write_note"] = true
				break
			}
		}
	}

	if done, assigned := user.Quests["add_event"]; assigned && !done {
		events, err := s.EventsRepo.GetUserEvents(user.Username)
		if err != nil {
			return err
		}
		for i := range events {
			if t, ok := utils.ParseTimestamp(events[i].Time); ok && utils.Today(t) == today {
				user.Quests["add_event"] = true
				break
			}
		}
	}

	if _, assigned := user.Quests["check_notifications"]; assigned && flags.CheckedNotifications {
		user.Quests["check_notifications"] = true
	}

	if _, assigned := user.Quests["use_darkmode"]; assigned && flags.DarkMode {
		user.Quests["use_darkmode"] = true
	}

	// edit_profile is set directly by the profile handler, not derived here.
	return nil
}

// ComputeDailyQuests runs assignment and derived completion for the user and
// persists the result under the users collection lock. The second return
// value reports whether a fresh draw happened. A missing user is a
// consistency error: the record is created at login.
func (s *QuestService) ComputeDailyQuests(username string, flags model.Flags) (*model.User, bool, error) {
	today := utils.Today(s.now())

	var snapshot model.User
	var drawn bool
	err := s.UsersRepo.MutateUser(username, func(u *model.User) error {
		drawn = s.EnsureDailyAssignment(u, today)
		if err := s.ApplyDerivedCompletion(u, today, flags); err != nil {
			return err
		}
		snapshot = *u
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &snapshot, drawn, nil
}

// ToggleQuest flips the flag for a quest id, creating the key when absent.
// The id is not validated against the pool or today's assignment; this is a
// deliberately permissive manual override.
func (s *QuestService) ToggleQuest(username, questID string) (bool, error) {
	var state bool
	err := s.UsersRepo.MutateUser(username, func(u *model.User) error {
		if u.Quests == nil {
			u.Quests = make(map[string]bool)
		}
		u.Quests[questID] = !u.Quests[questID]
		state = u.Quests[questID]
		return nil
	})
	if err != nil {
		return false, err
	}
	return state, nil
}

// MarkQuestDone records a completion observed directly by a handler, such as
// a profile edit or a dark-mode toggle.
func (s *QuestService) MarkQuestDone(username, questID string) error {
	return s.UsersRepo.MutateUser(username, func(u *model.User) error {
		if u.Quests == nil {
			u.Quests = make(map[string]bool)
		}
		u.Quests[questID] = true
		return nil
	})
}
