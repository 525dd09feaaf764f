package serviceImp

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"logitrack/pkg/apperr"
	repo "logitrack/pkg/report/repository"
	"logitrack/pkg/report/service"
)

type reportSvc struct{ r repo.ReportRepository }

func NewReportService(r repo.ReportRepository) service.ReportService { return &reportSvc{r} }

func (s *reportSvc) TruckReport(f repo.Filter) ([]repo.Row, error) {
	if err := checkFilter(f); err != nil {
		return nil, err
	}
	f.Status = repo.StatusAll
	return s.r.Rows(f)
}

func (s *reportSvc) TruckSchedule(f repo.Filter) ([]repo.Row, error) {
	if err := checkFilter(f); err != nil {
		return nil, err
	}
	switch f.Status {
	case repo.StatusAll, repo.StatusDispatched, repo.StatusInTransit, repo.StatusCheckedOut:
	default:
		return nil, apperr.Validation("invalid status filter")
	}
	return s.r.Rows(f)
}

var xlsxHeader = []string{
	"Truck No", "Transaction Date", "Plant", "Check-In", "Check-Out",
	"Loading Slip", "Qty", "Freight", "Priority", "Remarks",
}

func (s *reportSvc) ExportXLSX(f repo.Filter, w io.Writer) error {
	rows, err := s.TruckReport(f)
	if err != nil {
		return err
	}

	x := excelize.NewFile()
	defer x.Close()
	sheet := x.GetSheetName(0)

	for i, h := range xlsxHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := x.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for n, row := range rows {
		values := []any{
			row.TruckNo,
			row.TransactionDate.Format("2006-01-02"),
			row.PlantName,
			fmtTime(row.CheckInTime),
			fmtTime(row.CheckOutTime),
			row.LoadingSlipNo,
			row.Qty.String(),
			row.Freight.String(),
			row.Priority,
			row.Remarks,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, n+2)
			if err := x.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	_, err = x.WriteTo(w)
	return err
}

func checkFilter(f repo.Filter) error {
	if f.From.IsZero() || f.To.IsZero() {
		return apperr.Validation("missing required filters")
	}
	if len(f.PlantIDs) == 0 {
		return apperr.Validation("no plants selected")
	}
	return nil
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
