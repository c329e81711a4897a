package usecase

import (
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

type UserService struct {
	UsersRepo *repository.UsersRepo

	Now func() time.Time
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func newUser(username, email, avatar string, createdAt time.Time) *model.User {
	return &model.User{
		Username:    username,
		Email:       email,
		Avatar:      avatar,
		CreatedAt:   createdAt,
		Quests:      map[string]bool{},
		QuestLabels: map[string]string{},
		QuestDate:   "",
	}
}

// RegisterUser creates a user record. Fails with ErrUserExists on a taken
// username.
func (s *UserService) RegisterUser(username, email, avatar string) (*model.User, error) {
	if !utils.ValidateUsername(username) {
		return nil, errors.New("invalid username")
	}

	user := newUser(username, email, avatar, s.now())
	if err := s.UsersRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser resolves a username to its record, creating it on first login.
// There is no password: possession of the username is the whole credential.
// Email and avatar are refreshed when supplied.
func (s *UserService) LoginUser(username, email, avatar string) (*model.User, error) {
	if !utils.ValidateUsername(username) {
		return nil, errors.New("invalid username")
	}

	user, err := s.UsersRepo.FindUser(username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return s.RegisterUser(username, email, avatar)
	}
	if err != nil {
		return nil, err
	}

	if email != "" || avatar != "" {
		err = s.UsersRepo.MutateUser(username, func(u *model.User) error {
			if email != "" {
				u.Email = email
			}
			if avatar != "" {
				u.Avatar = avatar
			}
			*user = *u
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *UserService) GetUser(username string) (*model.User, error) {
	return s.UsersRepo.FindUser(username)
}

// UpdateProfile edits bio, dob and avatar, and marks the edit_profile quest
// in the same read-modify-write.
func (s *UserService) UpdateProfile(username, bio, dob, avatar string) (*model.User, error) {
	var snapshot model.User
	err := s.UsersRepo.MutateUser(username, func(u *model.User) error {
		u.Bio = bio
		u.DOB = dob
		if avatar != "" {
			u.Avatar = avatar
		}
		if u.Quests == nil {
			u.Quests = make(map[string]bool)
		}
		u.Quests["edit_profile"] = true
		snapshot = *u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
