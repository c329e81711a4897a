package handler

import (
	"main/middleware"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler ends the current session and clears the cookie.
func LogoutHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		utils.Unauthorized(c, "Not logged in")
		return
	}

	session.IsActive = false
	if err := sessionRepo.UpdateSession(session); err != nil {
		middleware.TrackError("session")
		utils.InternalError(c, "Failed to end session")
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
	utils.Success(c, gin.H{"message": "Logged out"})
}
