package serviceImp

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"logitrack/entities"
	"logitrack/pkg/apperr"
	repo "logitrack/pkg/user/repository"
	"logitrack/pkg/user/service"
)

type userSvc struct{ r repo.UserRepository }

func NewUserService(r repo.UserRepository) service.UserService { return &userSvc{r} }

func (s *userSvc) List() ([]entities.User, error) { return s.r.Active() }

func (s *userSvc) Register(nu service.NewUser) error {
	if strings.TrimSpace(nu.Username) == "" || nu.Password == "" || strings.TrimSpace(nu.ContactNumber) == "" {
		return apperr.Validation("username, password, and contact number are required")
	}
	u := entities.User{
		Username:      nu.Username,
		Password:      nu.Password,
		ContactNumber: nu.ContactNumber,
	}
	u.SetRoleList(nu.ModuleRights)
	u.SetAllowedPlantList(nu.AllowedPlants)
	return s.r.Create(&u)
}

func (s *userSvc) Update(oldUsername string, u *entities.User) error {
	ok, err := s.r.Update(oldUsername, u)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("user not found")
	}
	return nil
}

func (s *userSvc) Delete(username string) error {
	ok, err := s.r.SoftDelete(username)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("user not found")
	}
	return nil
}

func (s *userSvc) Authenticate(username, password string) (*entities.User, error) {
	u, err := s.r.FindActive(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	// Legacy store keeps plaintext passwords; comparison stays exact.
	if u.Password != password {
		return nil, apperr.NotFound("invalid credentials")
	}
	return u, nil
}
