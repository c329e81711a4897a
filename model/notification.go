package model

// Notification is derived on every request and never persisted.
type Notification struct {
	ID          string `json:"id"`    // "event-<id>" or "note-<id>"
	Title       string `json:"title"` // Note titles are prefixed "Note: "
	Details     string `json:"details"`
	Time        string `json:"time"`         // YYYY-MM-DD HH:MM
	SecondsLeft int64  `json:"seconds_left"` // Due time minus now, negative when overdue
	Soon        bool   `json:"soon"`         // 0 < SecondsLeft <= 3600
}
