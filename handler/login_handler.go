package handler

import (
	"time"

	"main/dto"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler resolves the username to a user record, creating it on first
// login, then opens a session and sets the signed cookie.
func LoginHandler(c *gin.Context, userService *usecase.UserService, sessionRepo *repository.SessionRepo, sessionDuration time.Duration) {
	var loginReq dto.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := userService.LoginUser(loginReq.Username, loginReq.Email, loginReq.Avatar)
	if err != nil {
		middleware.TrackError("login")
		utils.BadRequest(c, err.Error())
		return
	}

	if _, err := middleware.CreateSession(c, user.Username, sessionDuration, sessionRepo); err != nil {
		middleware.TrackError("session")
		utils.InternalError(c, "Failed to create session")
		return
	}

	utils.Success(c, gin.H{
		"message": "Logged in as " + user.Username,
		"user":    dto.ToUserProfileResponse(user),
	})
}
