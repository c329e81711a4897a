package model

import "time"

type UserStats struct {
	NotesStats struct {
		Total     int `json:"total"`
		Scheduled int `json:"scheduled"`
	} `json:"notes_stats"`
	EventStats struct {
		Total    int `json:"total"`
		Upcoming int `json:"upcoming"`
	} `json:"event_stats"`
	QuestStats struct {
		Assigned  int    `json:"assigned"`
		Completed int    `json:"completed"`
		Date      string `json:"date"`
	} `json:"quest_stats"`
	ActivityStats struct {
		LastActive     time.Time `json:"last_active"`
		AccountCreated time.Time `json:"account_created"`
		TotalSessions  int       `json:"total_sessions"`
	} `json:"activity_stats"`
}

type SystemStats struct {
	CPUPercent  float64 `json:"cpu_percent"`
	MemoryUsed  uint64  `json:"memory_used"`
	MemoryTotal uint64  `json:"memory_total"`
	Goroutines  int     `json:"goroutines"`
}
