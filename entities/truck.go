package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TruckTransaction is the header row of one dispatch cycle. TruckNoNorm holds
// the trimmed/lowercased truck number; every lookup goes through it so that
// "MH12 AB" and " mh12 ab " match the same truck. At most one row per
// TruckNoNorm may have Completed=false (enforced by the engine and, on sqlite,
// by a partial unique index created in database.Open).
type TruckTransaction struct {
	TransactionID   uint            `gorm:"primaryKey" json:"transactionid"`
	TruckNo         string          `json:"truckno"`
	TruckNoNorm     string          `gorm:"index" json:"-"`
	TransactionDate time.Time       `gorm:"index" json:"transactiondate"`
	CityName        string          `json:"cityname"`
	Transporter     string          `json:"transporter"`
	AmountPerTon    decimal.Decimal `gorm:"type:decimal(10,2)" json:"amountperton"`
	TruckWeight     decimal.Decimal `gorm:"type:decimal(10,2)" json:"truckweight"`
	DeliverPoint    string          `json:"deliverpoint"`
	Remarks         string          `json:"remarks"`
	Completed       bool            `gorm:"index" json:"completed"`
	CreatedAt       time.Time       `json:"createdat"`
}

// TruckTransactionDetail is one plant stop of a header. Within a header the
// tuple (PlantID, LoadingSlipNo, Priority) is unique; resubmitting the same
// line is ignored. A row with any check progress is never touched by the
// header's replace-pending-lines path.
type TruckTransactionDetail struct {
	DetailID       uint            `gorm:"primaryKey" json:"detailid"`
	TransactionID  uint            `gorm:"index" json:"transactionid"`
	PlantID        uint            `gorm:"index" json:"plantid"`
	LoadingSlipNo  string          `json:"loadingslipno"`
	Qty            decimal.Decimal `gorm:"type:decimal(10,2)" json:"qty"`
	Priority       int             `json:"priority"`
	Remarks        string          `json:"remarks"`
	Freight        decimal.Decimal `gorm:"type:decimal(10,2)" json:"freight"`
	CheckInStatus  bool            `json:"checkinstatus"`
	CheckInTime    *time.Time      `json:"checkintime"`
	CheckOutStatus bool            `json:"checkoutstatus"`
	CheckOutTime   *time.Time      `json:"checkouttime"`
	InvoiceNumber  string          `json:"invoicenumber"`
}
