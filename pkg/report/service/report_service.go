package service

import (
	"io"

	"logitrack/pkg/report/repository"
)

type ReportService interface {
	// TruckReport returns every stop for the selected plants and date range.
	TruckReport(f repository.Filter) ([]repository.Row, error)
	// TruckSchedule is TruckReport narrowed by gate status.
	TruckSchedule(f repository.Filter) ([]repository.Row, error)
	// ExportXLSX writes the report as an xlsx workbook.
	ExportXLSX(f repository.Filter, w io.Writer) error
}
