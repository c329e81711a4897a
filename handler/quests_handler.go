package handler

import (
	"errors"

	"main/dto"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetDailyQuestsHandler returns today's assignment, drawing a fresh one when
// the stored quest_date is stale and folding in derived completions.
func GetDailyQuestsHandler(c *gin.Context, questService *usecase.QuestService) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		utils.Unauthorized(c, "Not logged in")
		return
	}

	user, drawn, err := questService.ComputeDailyQuests(session.Username, session.Flags())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			middleware.TrackError("consistency")
			utils.InternalError(c, "User record missing for session")
			return
		}
		utils.InternalError(c, "Failed to compute daily quests")
		return
	}
	if drawn {
		middleware.QuestAssignmentsTotal.Inc()
	}

	utils.Success(c, dto.ToDailyQuestsResponse(user))
}

// ToggleQuestHandler flips a quest flag by id. Ids outside today's assignment
// are accepted; this is the manual override path.
func ToggleQuestHandler(c *gin.Context, questService *usecase.QuestService) {
	username := c.GetString("username")
	questID := c.Param("id")

	state, err := questService.ToggleQuest(username, questID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			middleware.TrackError("consistency")
			utils.InternalError(c, "User record missing for session")
			return
		}
		utils.InternalError(c, "Failed to toggle quest")
		return
	}

	if state {
		middleware.TrackQuestCompletion(questID, "manual")
	}
	utils.Success(c, gin.H{
		"quest_id": questID,
		"done":     state,
	})
}
