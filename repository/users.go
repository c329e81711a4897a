package repository

import (
	"fmt"

	"main/model"
)

type UsersRepo struct {
	Store *Store
}

func GetUsersRepo(store *Store) *UsersRepo {
	return &UsersRepo{Store: store}
}

// FindUser returns the user record for a username, or ErrUserNotFound.
func (r *UsersRepo) FindUser(username string) (*model.User, error) {
	users, err := LoadCollection[model.User](r.Store, UsersCollection)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// CreateUser appends a new user record. Usernames are primary keys.
func (r *UsersRepo) CreateUser(user *model.User) error {
	if user.Username == "" {
		return fmt.Errorf("username is required")
	}

	return UpdateCollection(r.Store, UsersCollection, func(users []model.User) ([]model.User, error) {
		for i := range users {
			if users[i].Username == user.Username {
				return nil, ErrUserExists
			}
		}
		return append(users, *user), nil
	})
}

// UpdateUser replaces the stored record matching user.Username.
func (r *UsersRepo) UpdateUser(user *model.User) error {
	return UpdateCollection(r.Store, UsersCollection, func(users []model.User) ([]model.User, error) {
		for i := range users {
			if users[i].Username == user.Username {
				users[i] = *user
				return users, nil
			}
		}
		return nil, ErrUserNotFound
	})
}

// MutateUser runs fn against the stored record under the collection lock, so
// the read-modify-write cannot interleave with another writer.
func (r *UsersRepo) MutateUser(username string, fn func(*model.User) error) error {
	return UpdateCollection(r.Store, UsersCollection, func(users []model.User) ([]model.User, error) {
		for i := range users {
			if users[i].Username == username {
				if err := fn(&users[i]); err != nil {
					return nil, err
				}
				return users, nil
			}
		}
		return nil, ErrUserNotFound
	})
}
