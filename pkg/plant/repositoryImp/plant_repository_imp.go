package repositoryImp

import (
	"gorm.io/gorm"

	"logitrack/entities"
	"logitrack/pkg/normalize"
	"logitrack/pkg/plant/repository"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) Create(p *entities.Plant) error { return r.db.Create(p).Error }

func (r *plantRepo) Update(p *entities.Plant) error {
	return r.db.Model(&entities.Plant{}).Where("plant_id = ?", p.PlantID).Updates(map[string]any{
		"plant_name":     p.PlantName,
		"plant_address":  p.PlantAddress,
		"contact_person": p.ContactPerson,
		"mobile_no":      p.MobileNo,
		"remarks":        p.Remarks,
	}).Error
}

func (r *plantRepo) FindByID(id uint) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantRepo) All() ([]entities.Plant, error) {
	var list []entities.Plant
	return list, r.db.Order("plant_name asc").Find(&list).Error
}

func (r *plantRepo) Active() ([]entities.Plant, error) {
	var list []entities.Plant
	return list, r.db.Where("is_deleted = ?", false).Order("plant_name asc").Find(&list).Error
}

func (r *plantRepo) SoftDelete(id uint) (bool, error) {
	res := r.db.Model(&entities.Plant{}).
		Where("plant_id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	return res.RowsAffected > 0, res.Error
}

func (r *plantRepo) FindByName(name string) (*entities.Plant, error) {
	var p entities.Plant
	err := r.db.Where("LOWER(TRIM(plant_name)) = ? AND is_deleted = ?", normalize.Fold(name), false).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
