package repository

import "logitrack/entities"

type PlantRepository interface {
	Create(p *entities.Plant) error
	Update(p *entities.Plant) error
	FindByID(id uint) (*entities.Plant, error)
	All() ([]entities.Plant, error)
	Active() ([]entities.Plant, error)
	SoftDelete(id uint) (bool, error)
	// FindByName matches case-insensitively ignoring surrounding whitespace.
	FindByName(name string) (*entities.Plant, error)
}
