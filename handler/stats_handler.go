package handler

import (
	"log"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	UsersRepo   *repository.UsersRepo
	NotesRepo   *repository.NotesRepo
	EventsRepo  *repository.EventsRepo
	SessionRepo *repository.SessionRepo
}

func NewStatsHandler(
	usersRepo *repository.UsersRepo,
	notesRepo *repository.NotesRepo,
	eventsRepo *repository.EventsRepo,
	sessionRepo *repository.SessionRepo,
) *StatsHandler {
	return &StatsHandler{
		UsersRepo:   usersRepo,
		NotesRepo:   notesRepo,
		EventsRepo:  eventsRepo,
		SessionRepo: sessionRepo,
	}
}

// GetUserStats aggregates per-user counts plus a system snapshot.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	username := c.GetString("username")

	user, err := h.UsersRepo.FindUser(username)
	if err != nil {
		log.Printf("Error fetching user %s: %v", username, err)
		utils.InternalError(c, "Failed to fetch user details")
		return
	}

	var stats model.UserStats
	now := time.Now()

	notes, err := h.NotesRepo.GetUserNotes(username)
	if err != nil {
		utils.InternalError(c, "Failed to count notes")
		return
	}
	stats.NotesStats.Total = len(notes)
	for i := range notes {
		if notes[i].Schedule != "" {
			stats.NotesStats.Scheduled++
		}
	}

	events, err := h.EventsRepo.GetUserEvents(username)
	if err != nil {
		utils.InternalError(c, "Failed to count events")
		return
	}
	stats.EventStats.Total = len(events)
	for i := range events {
		if t, ok := utils.ParseTimestamp(events[i].Time); ok && t.After(now) {
			stats.EventStats.Upcoming++
		}
	}

	stats.QuestStats.Assigned = len(user.Quests)
	stats.QuestStats.Date = user.QuestDate
	for _, done := range user.Quests {
		if done {
			stats.QuestStats.Completed++
		}
	}

	sessions, err := h.SessionRepo.GetUserActiveSessions(username)
	if err != nil {
		utils.InternalError(c, "Failed to get sessions")
		return
	}
	stats.ActivityStats.AccountCreated = user.CreatedAt
	stats.ActivityStats.TotalSessions = len(sessions)
	for i := range sessions {
		if sessions[i].LastActivityAt.After(stats.ActivityStats.LastActive) {
			stats.ActivityStats.LastActive = sessions[i].LastActivityAt
		}
	}

	utils.Success(c, gin.H{
		"stats":  stats,
		"system": utils.GetSystemStats(),
	})
}
