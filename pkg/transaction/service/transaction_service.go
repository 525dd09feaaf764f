package service

import (
	"time"

	"github.com/shopspring/decimal"

	"logitrack/entities"
	"logitrack/pkg/transaction/repository"
)

// TransactionForm carries the header fields of a submission. A zero
// TransactionID means the create path; a non-zero one updates that header.
type TransactionForm struct {
	TransactionID   uint
	TruckNo         string
	TransactionDate time.Time
	CityName        string
	Transporter     string
	AmountPerTon    decimal.Decimal
	TruckWeight     decimal.Decimal
	DeliverPoint    string
	Remarks         string
}

// LineItem is one submitted plant stop.
type LineItem struct {
	PlantName     string
	LoadingSlipNo string
	Qty           decimal.Decimal
	Priority      int
	Remarks       string
	Freight       decimal.Decimal
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
}

type SubmitResult struct {
	TransactionID uint
	Completed     bool
}

type CheckAction string

const (
	CheckIn  CheckAction = "Check In"
	CheckOut CheckAction = "Check Out"
)

type CheckResult struct {
	Action CheckAction
	// AllCompleted is set when this check-out finished the last pending stop.
	AllCompleted bool
}

type TruckWithDetails struct {
	Master  *entities.TruckTransaction   `json:"master"`
	Details []repository.DetailWithPlant `json:"details"`
}

// TruckTransactionService is the orchestration core: admission checks, the
// header+detail upsert, duplicate suppression, gate transitions and
// completion detection. Every mutating call is one atomic unit of work.
type TruckTransactionService interface {
	Submit(form TransactionForm, lines []LineItem) (*SubmitResult, error)
	UpdateCheckStatus(truckNo, plantName string, action CheckAction, invoiceNumber string) (*CheckResult, error)
	DeleteDetail(detailID uint) error
	ActiveTrucks() ([]repository.ActiveTruck, error)
	Current(truckNo string) (*TruckWithDetails, error)
}
