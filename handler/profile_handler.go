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

func GetProfileHandler(c *gin.Context, userService *usecase.UserService) {
	username := c.GetString("username")

	user, err := userService.GetUser(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Session points at a user the store does not know: desync.
			middleware.TrackError("consistency")
			utils.InternalError(c, "User record missing for session")
			return
		}
		utils.InternalError(c, "Failed to fetch profile")
		return
	}

	utils.Success(c, gin.H{"user": dto.ToUserProfileResponse(user)})
}

// UpdateProfileHandler edits bio, dob and avatar. Completing the edit_profile
// quest is part of the same store write.
func UpdateProfileHandler(c *gin.Context, userService *usecase.UserService) {
	username := c.GetString("username")

	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := userService.UpdateProfile(username, req.Bio, req.DOB, req.Avatar)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			middleware.TrackError("consistency")
			utils.InternalError(c, "User record missing for session")
			return
		}
		utils.InternalError(c, "Failed to update profile")
		return
	}

	middleware.TrackQuestCompletion("edit_profile", "direct")
	utils.Success(c, gin.H{
		"message": "Profile updated",
		"user":    dto.ToUserProfileResponse(user),
	})
}
