package dto

import (
	"time"

	"main/model"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type ProfileUpdateRequest struct {
	Bio    string `json:"bio"`
	DOB    string `json:"dob"`
	Avatar string `json:"avatar"`
}

type UserProfileResponse struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio,omitempty"`
	DOB       string    `json:"dob,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserProfileResponse(user *model.User) UserProfileResponse {
	return UserProfileResponse{
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		DOB:       user.DOB,
		CreatedAt: user.CreatedAt,
	}
}
