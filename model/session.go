package model

import "time"

type Session struct {
	SessionID      string    `json:"session_id"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	DeviceInfo     string    `json:"device_info"`
	IPAddress      string    `json:"ip_address"`
	IsActive       bool      `json:"is_active"`

	// Session-scoped flags consumed by the quest engine.
	DarkMode             bool `json:"dark_mode"`
	CheckedNotifications bool `json:"checked_notifications"`
}

// Flags is the session state the quest engine observes. Passed explicitly so
// the engine stays testable without a live session.
type Flags struct {
	DarkMode             bool
	CheckedNotifications bool
}

func (s *Session) Flags() Flags {
	return Flags{
		DarkMode:             s.DarkMode,
		CheckedNotifications: s.CheckedNotifications,
	}
}
