package handler

import (
	"log"

	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// ToggleDarkModeHandler flips the session's dark-mode flag. Turning it on
// completes the use_darkmode quest.
func ToggleDarkModeHandler(c *gin.Context, questService *usecase.QuestService, sessionRepo *repository.SessionRepo) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		utils.Unauthorized(c, "Not logged in")
		return
	}

	session.DarkMode = !session.DarkMode
	if err := sessionRepo.UpdateSession(session); err != nil {
		middleware.TrackError("session")
		utils.InternalError(c, "Failed to update session")
		return
	}

	if session.DarkMode {
		if err := questService.MarkQuestDone(session.Username, "use_darkmode"); err != nil {
			// Quest bookkeeping must not fail the toggle itself.
			log.Printf("failed to mark use_darkmode quest: %v", err)
		} else {
			middleware.TrackQuestCompletion("use_darkmode", "direct")
		}
	}

	utils.Success(c, gin.H{"darkmode": session.DarkMode})
}
