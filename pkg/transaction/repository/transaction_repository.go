package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"logitrack/entities"
)

// ActiveTruck is one row of the active-trucks listing.
type ActiveTruck struct {
	TruckNo         string    `json:"truckno"`
	TransactionDate time.Time `json:"transactiondate"`
	CityName        string    `json:"cityname"`
}

// DetailWithPlant joins a detail row with its plant name.
type DetailWithPlant struct {
	entities.TruckTransactionDetail
	PlantName string `json:"plantname"`
}

// PlantQuantity is the per-plant load summary of a truck's active header.
type PlantQuantity struct {
	PlantName string          `json:"PlantName"`
	Quantity  decimal.Decimal `json:"quantity"`
	Priority  int             `json:"priority"`
}

// TransactionRepository is the durable store for headers and detail rows.
// Atomic runs fn against a repository bound to one database transaction;
// returning an error rolls every statement back. All truckNoNorm arguments
// must already be normalize.Fold'ed.
type TransactionRepository interface {
	Atomic(fn func(TransactionRepository) error) error

	ActiveHeaderExists(truckNoNorm string) (bool, error)
	// PendingDetailExists scans detail/header joins directly for any stop of
	// this truck that is not fully checked out, independent of the completed
	// flag. Second arm of the composite admission guard.
	PendingDetailExists(truckNoNorm string) (bool, error)

	CreateHeader(m *entities.TruckTransaction) error
	UpdateHeader(m *entities.TruckTransaction) error
	// CurrentHeader returns the newest incomplete header for the truck.
	CurrentHeader(truckNoNorm string) (*entities.TruckTransaction, error)

	// DeleteUntouchedDetails removes rows of the header with no check
	// progress; rows with any check-in or check-out survive.
	DeleteUntouchedDetails(transactionID uint) error
	DetailExists(transactionID, plantID uint, loadingSlipNo string, priority int) (bool, error)
	CreateDetail(d *entities.TruckTransactionDetail) error
	FindDetail(transactionID, plantID uint) (*entities.TruckTransactionDetail, error)
	SaveDetail(d *entities.TruckTransactionDetail) error
	DeleteDetailByID(detailID uint) (bool, error)

	// CountDetails returns the header's total detail rows and how many have
	// both gate events done.
	CountDetails(transactionID uint) (total, done int64, err error)
	// MarkCompleted flips the header's completed flag, re-checking inside the
	// statement that no row is still pending.
	MarkCompleted(transactionID uint) error

	ActiveTrucks() ([]ActiveTruck, error)
	DetailsWithPlant(transactionID uint) ([]DetailWithPlant, error)
	PlantQuantities(transactionID uint) ([]PlantQuantity, error)
	// TrucksAtPlant lists distinct active truck numbers whose stop at the
	// named plant has the given gate state.
	TrucksAtPlant(plantNameNorm string, checkedIn, checkedOut bool) ([]string, error)
}
