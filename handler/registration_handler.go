package handler

import (
	"errors"

	"main/dto"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := userService.RegisterUser(req.Username, req.Email, req.Avatar)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			utils.Conflict(c, "User already exists")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{
		"user": dto.ToUserProfileResponse(user),
	})
}
