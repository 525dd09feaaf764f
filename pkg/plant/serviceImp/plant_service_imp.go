package serviceImp

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"logitrack/entities"
	"logitrack/pkg/apperr"
	repo "logitrack/pkg/plant/repository"
	"logitrack/pkg/plant/service"
)

type plantSvc struct{ r repo.PlantRepository }

func NewPlantService(r repo.PlantRepository) service.PlantService { return &plantSvc{r} }

func (s *plantSvc) CreatePlant(p *entities.Plant) (*entities.Plant, error) {
	if strings.TrimSpace(p.PlantName) == "" {
		return nil, apperr.Validation("plant name is required")
	}
	if err := s.r.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *plantSvc) UpdatePlant(p *entities.Plant) (*entities.Plant, error) {
	if _, err := s.GetPlant(p.PlantID); err != nil {
		return nil, err
	}
	if err := s.r.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *plantSvc) GetPlant(id uint) (*entities.Plant, error) {
	p, err := s.r.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("plant not found")
	}
	return p, err
}

func (s *plantSvc) ListAll() ([]entities.Plant, error) { return s.r.All() }

func (s *plantSvc) ListActive() ([]entities.Plant, error) { return s.r.Active() }

func (s *plantSvc) DeletePlant(id uint) error {
	ok, err := s.r.SoftDelete(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("plant not found")
	}
	return nil
}

func (s *plantSvc) ResolveID(name string) (uint, error) {
	p, err := s.r.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperr.NotFound("plant not found: %s", strings.TrimSpace(name))
	}
	if err != nil {
		return 0, err
	}
	return p.PlantID, nil
}
