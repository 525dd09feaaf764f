package repository

import "logitrack/entities"

type UserRepository interface {
	Create(u *entities.User) error
	Update(oldUsername string, u *entities.User) (bool, error)
	SoftDelete(username string) (bool, error)
	Active() ([]entities.User, error)
	// FindActive matches the username case-insensitively among non-deleted users.
	FindActive(username string) (*entities.User, error)
}
