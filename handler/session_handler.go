package handler

import (
	"main/dto"
	"main/middleware"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetActiveSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		utils.Unauthorized(c, "Not logged in")
		return
	}

	sessions, err := sessionRepo.GetUserActiveSessions(session.Username)
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}
	middleware.ActiveSessions.Set(float64(len(sessions)))

	utils.Success(c, gin.H{
		"sessions": dto.ToSessionResponses(sessions, session.SessionID),
	})
}

func LogoutAllSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		utils.Unauthorized(c, "Not logged in")
		return
	}

	if err := sessionRepo.EndAllUserSessions(session.Username); err != nil {
		utils.InternalError(c, "Failed to end all sessions")
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
	utils.Success(c, gin.H{"message": "Logged out of all sessions"})
}
