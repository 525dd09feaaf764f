package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"logitrack/entities"
	"logitrack/pkg/transaction/repository"
)

type txRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TransactionRepository { return &txRepo{db} }

func (r *txRepo) Atomic(fn func(repository.TransactionRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&txRepo{db: tx})
	})
}

func (r *txRepo) ActiveHeaderExists(truckNoNorm string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.TruckTransaction{}).
		Where("truck_no_norm = ? AND completed = ?", truckNoNorm, false).
		Count(&n).Error
	return n > 0, err
}

func (r *txRepo) PendingDetailExists(truckNoNorm string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.TruckTransactionDetail{}).
		Joins("JOIN truck_transactions m ON truck_transaction_details.transaction_id = m.transaction_id").
		Where("m.truck_no_norm = ?", truckNoNorm).
		Where("truck_transaction_details.check_in_status = ? OR truck_transaction_details.check_out_status = ?", false, false).
		Count(&n).Error
	return n > 0, err
}

func (r *txRepo) CreateHeader(m *entities.TruckTransaction) error { return r.db.Create(m).Error }

func (r *txRepo) UpdateHeader(m *entities.TruckTransaction) error {
	return r.db.Model(&entities.TruckTransaction{}).
		Where("transaction_id = ?", m.TransactionID).
		Updates(map[string]any{
			"truck_no":         m.TruckNo,
			"truck_no_norm":    m.TruckNoNorm,
			"transaction_date": m.TransactionDate,
			"city_name":        m.CityName,
			"transporter":      m.Transporter,
			"amount_per_ton":   m.AmountPerTon,
			"truck_weight":     m.TruckWeight,
			"deliver_point":    m.DeliverPoint,
			"remarks":          m.Remarks,
		}).Error
}

func (r *txRepo) CurrentHeader(truckNoNorm string) (*entities.TruckTransaction, error) {
	var m entities.TruckTransaction
	err := r.db.Where("truck_no_norm = ? AND completed = ?", truckNoNorm, false).
		Order("transaction_id desc").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *txRepo) DeleteUntouchedDetails(transactionID uint) error {
	return r.db.Where("transaction_id = ? AND check_in_status = ? AND check_out_status = ?",
		transactionID, false, false).
		Delete(&entities.TruckTransactionDetail{}).Error
}

func (r *txRepo) DetailExists(transactionID, plantID uint, loadingSlipNo string, priority int) (bool, error) {
	var n int64
	err := r.db.Model(&entities.TruckTransactionDetail{}).
		Where("transaction_id = ? AND plant_id = ? AND loading_slip_no = ? AND priority = ?",
			transactionID, plantID, loadingSlipNo, priority).
		Count(&n).Error
	return n > 0, err
}

func (r *txRepo) CreateDetail(d *entities.TruckTransactionDetail) error { return r.db.Create(d).Error }

func (r *txRepo) FindDetail(transactionID, plantID uint) (*entities.TruckTransactionDetail, error) {
	var d entities.TruckTransactionDetail
	err := r.db.Where("transaction_id = ? AND plant_id = ?", transactionID, plantID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *txRepo) SaveDetail(d *entities.TruckTransactionDetail) error { return r.db.Save(d).Error }

func (r *txRepo) DeleteDetailByID(detailID uint) (bool, error) {
	res := r.db.Delete(&entities.TruckTransactionDetail{}, detailID)
	return res.RowsAffected > 0, res.Error
}

func (r *txRepo) CountDetails(transactionID uint) (total, done int64, err error) {
	if err = r.db.Model(&entities.TruckTransactionDetail{}).
		Where("transaction_id = ?", transactionID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = r.db.Model(&entities.TruckTransactionDetail{}).
		Where("transaction_id = ? AND check_in_status = ? AND check_out_status = ?",
			transactionID, true, true).
		Count(&done).Error
	return total, done, err
}

func (r *txRepo) MarkCompleted(transactionID uint) error {
	// Guarded against racing check-status updates: the flag only flips when
	// no row is still pending at statement time.
	return r.db.Exec(`
UPDATE truck_transactions SET completed = 1
WHERE transaction_id = ?
  AND NOT EXISTS (
    SELECT 1 FROM truck_transaction_details
    WHERE transaction_id = ?
      AND (check_in_status <> 1 OR check_out_status <> 1)
  )`, transactionID, transactionID).Error
}

func (r *txRepo) ActiveTrucks() ([]repository.ActiveTruck, error) {
	var list []repository.ActiveTruck
	err := r.db.Model(&entities.TruckTransaction{}).
		Select("truck_no, transaction_date, city_name").
		Where("truck_no <> '' AND completed = ?", false).
		Order("transaction_date desc").
		Scan(&list).Error
	return list, err
}

func (r *txRepo) DetailsWithPlant(transactionID uint) ([]repository.DetailWithPlant, error) {
	var list []repository.DetailWithPlant
	err := r.db.Model(&entities.TruckTransactionDetail{}).
		Select("truck_transaction_details.*, p.plant_name AS plant_name").
		Joins("LEFT JOIN plants p ON truck_transaction_details.plant_id = p.plant_id").
		Where("truck_transaction_details.transaction_id = ?", transactionID).
		Order("truck_transaction_details.priority asc, truck_transaction_details.detail_id asc").
		Scan(&list).Error
	return list, err
}

func (r *txRepo) PlantQuantities(transactionID uint) ([]repository.PlantQuantity, error) {
	var list []repository.PlantQuantity
	err := r.db.Model(&entities.TruckTransactionDetail{}).
		Select("p.plant_name AS plant_name, SUM(truck_transaction_details.qty) AS quantity, MIN(truck_transaction_details.priority) AS priority").
		Joins("JOIN plants p ON truck_transaction_details.plant_id = p.plant_id").
		Where("truck_transaction_details.transaction_id = ?", transactionID).
		Group("p.plant_name").
		Order("MIN(truck_transaction_details.priority) asc").
		Scan(&list).Error
	return list, err
}

func (r *txRepo) TrucksAtPlant(plantNameNorm string, checkedIn, checkedOut bool) ([]string, error) {
	var list []string
	err := r.db.Model(&entities.TruckTransactionDetail{}).
		Distinct().
		Joins("JOIN truck_transactions m ON truck_transaction_details.transaction_id = m.transaction_id").
		Joins("JOIN plants p ON truck_transaction_details.plant_id = p.plant_id").
		Where("LOWER(TRIM(p.plant_name)) = ?", plantNameNorm).
		Where("truck_transaction_details.check_in_status = ? AND truck_transaction_details.check_out_status = ?", checkedIn, checkedOut).
		Where("m.completed = ?", false).
		Pluck("m.truck_no", &list).Error
	return list, err
}
