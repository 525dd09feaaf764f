package repositoryImp

import (
	"gorm.io/gorm"

	"logitrack/entities"
	"logitrack/pkg/report/repository"
)

type reportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReportRepository { return &reportRepo{db} }

func (r *reportRepo) Rows(f repository.Filter) ([]repository.Row, error) {
	q := r.db.Model(&entities.TruckTransactionDetail{}).
		Select(`m.truck_no AS truck_no,
m.transaction_date AS transaction_date,
p.plant_name AS plant_name,
truck_transaction_details.check_in_time AS check_in_time,
truck_transaction_details.check_out_time AS check_out_time,
truck_transaction_details.loading_slip_no AS loading_slip_no,
truck_transaction_details.qty AS qty,
truck_transaction_details.freight AS freight,
truck_transaction_details.priority AS priority,
truck_transaction_details.remarks AS remarks`).
		Joins("JOIN plants p ON truck_transaction_details.plant_id = p.plant_id").
		Joins("JOIN truck_transactions m ON truck_transaction_details.transaction_id = m.transaction_id").
		Where("truck_transaction_details.plant_id IN ?", f.PlantIDs).
		Where("DATE(m.transaction_date) BETWEEN DATE(?) AND DATE(?)", f.From, f.To)

	switch f.Status {
	case repository.StatusDispatched:
		q = q.Where("truck_transaction_details.check_in_status = ? AND truck_transaction_details.check_out_status = ?", false, false)
	case repository.StatusInTransit:
		q = q.Where("truck_transaction_details.check_in_status = ? AND truck_transaction_details.check_out_status = ?", true, false)
	case repository.StatusCheckedOut:
		q = q.Where("truck_transaction_details.check_in_status = ? AND truck_transaction_details.check_out_status = ?", true, true)
	}

	var rows []repository.Row
	return rows, q.Order("m.transaction_date desc").Scan(&rows).Error
}
