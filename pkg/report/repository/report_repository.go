package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusFilter narrows schedule rows by gate progress.
type StatusFilter string

const (
	StatusAll        StatusFilter = "All"
	StatusDispatched StatusFilter = "Dispatched" // not checked in yet
	StatusInTransit  StatusFilter = "InTransit"  // checked in, not out
	StatusCheckedOut StatusFilter = "CheckedOut"
)

type Filter struct {
	From     time.Time
	To       time.Time
	PlantIDs []uint
	Status   StatusFilter
}

type Row struct {
	TruckNo         string          `json:"truckNo"`
	TransactionDate time.Time       `json:"transactionDate"`
	PlantName       string          `json:"plantName"`
	CheckInTime     *time.Time      `json:"checkInTime"`
	CheckOutTime    *time.Time      `json:"checkOutTime"`
	LoadingSlipNo   string          `json:"loadingSlipNo"`
	Qty             decimal.Decimal `json:"qty"`
	Freight         decimal.Decimal `json:"freight"`
	Priority        int             `json:"priority"`
	Remarks         string          `json:"remarks"`
}

type ReportRepository interface {
	Rows(f Filter) ([]Row, error)
}
