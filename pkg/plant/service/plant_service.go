package service

import "logitrack/entities"

type PlantService interface {
	CreatePlant(p *entities.Plant) (*entities.Plant, error)
	UpdatePlant(p *entities.Plant) (*entities.Plant, error)
	GetPlant(id uint) (*entities.Plant, error)
	ListAll() ([]entities.Plant, error)
	ListActive() ([]entities.Plant, error)
	DeletePlant(id uint) error
	// ResolveID maps a human-entered plant name to its stable ID.
	ResolveID(name string) (uint, error)
}
