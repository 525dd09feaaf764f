package service

import "logitrack/entities"

// NewUser is the domain-side shape of a user registration: rights and plant
// access are ordered string lists, comma-joined only at the persistence edge.
type NewUser struct {
	Username      string
	Password      string
	ContactNumber string
	ModuleRights  []string
	AllowedPlants []string
}

type UserService interface {
	List() ([]entities.User, error)
	Register(nu NewUser) error
	Update(oldUsername string, u *entities.User) error
	Delete(username string) error
	// Authenticate returns the active user when the credentials match.
	Authenticate(username, password string) (*entities.User, error)
}
