package repositoryImp

import (
	"gorm.io/gorm"

	"logitrack/entities"
	"logitrack/pkg/normalize"
	"logitrack/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) Update(oldUsername string, u *entities.User) (bool, error) {
	res := r.db.Model(&entities.User{}).Where("username = ?", oldUsername).Updates(map[string]any{
		"username":       u.Username,
		"password":       u.Password,
		"role":           u.Role,
		"allowed_plants": u.AllowedPlants,
		"contact_number": u.ContactNumber,
	})
	return res.RowsAffected > 0, res.Error
}

func (r *userRepo) SoftDelete(username string) (bool, error) {
	res := r.db.Model(&entities.User{}).
		Where("username = ? AND is_delete = ?", username, false).
		Update("is_delete", true)
	return res.RowsAffected > 0, res.Error
}

func (r *userRepo) Active() ([]entities.User, error) {
	var list []entities.User
	return list, r.db.Where("is_delete = ?", false).Order("username asc").Find(&list).Error
}

func (r *userRepo) FindActive(username string) (*entities.User, error) {
	var u entities.User
	err := r.db.Where("LOWER(username) = ? AND is_delete = ?", normalize.Fold(username), false).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
