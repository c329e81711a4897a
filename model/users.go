package model

import "time"

type User struct {
	Username    string            `json:"username" validate:"required,min=3,max=20"` // Unique identity, primary key
	Email       string            `json:"email"`                                     // Email field
	Avatar      string            `json:"avatar"`                                    // Avatar filename reference
	DarkMode    bool              `json:"dark_mode"`                                 // Legacy duplicate of the session flag
	Bio         string            `json:"bio,omitempty"`
	DOB         string            `json:"dob,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	Quests      map[string]bool   `json:"quests"`       // Quest id -> completion, valid for QuestDate only
	QuestLabels map[string]string `json:"quest_labels"` // Quest id -> display text, same scope
	QuestDate   string            `json:"quest_date"`   // YYYY-MM-DD the quest fields were assigned for
}

// QuestsFresh reports whether the stored quest assignment is valid for today.
// A user record without quest fields behaves as QuestDate == "".
func (u *User) QuestsFresh(today string) bool {
	return u.QuestDate == today
}
