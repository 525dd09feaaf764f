package serviceImp

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"logitrack/database"
	"logitrack/entities"
	"logitrack/pkg/apperr"
	plantRepoImp "logitrack/pkg/plant/repositoryImp"
	plantSvcImp "logitrack/pkg/plant/serviceImp"
	repo "logitrack/pkg/report/repository"
	reportRepoImp "logitrack/pkg/report/repositoryImp"
	"logitrack/pkg/report/service"
	txRepoImp "logitrack/pkg/transaction/repositoryImp"
	txService "logitrack/pkg/transaction/service"
	txSvcImp "logitrack/pkg/transaction/serviceImp"
)

type fixture struct {
	db       *gorm.DB
	svc      service.ReportService
	trucks   txService.TruckTransactionService
	plantIDs map[string]uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := database.Open("", filepath.Join(t.TempDir(), "test.db"))
	ids := map[string]uint{}
	for _, name := range []string{"Plant A", "Plant B"} {
		p := entities.Plant{PlantName: name}
		require.NoError(t, db.Create(&p).Error)
		ids[name] = p.PlantID
	}
	plants := plantSvcImp.NewPlantService(plantRepoImp.New(db))
	return &fixture{
		db:       db,
		svc:      NewReportService(reportRepoImp.New(db)),
		trucks:   txSvcImp.NewTruckTransactionService(txRepoImp.New(db), plants),
		plantIDs: ids,
	}
}

func (f *fixture) dispatch(t *testing.T, truckNo string, date time.Time, stops ...string) {
	t.Helper()
	var lines []txService.LineItem
	for i, plant := range stops {
		lines = append(lines, txService.LineItem{
			PlantName:     plant,
			LoadingSlipNo: "LS-1",
			Qty:           decimal.NewFromInt(10),
			Priority:      i + 1,
			Freight:       decimal.NewFromInt(900),
		})
	}
	_, err := f.trucks.Submit(txService.TransactionForm{
		TruckNo:         truckNo,
		TransactionDate: date,
	}, lines)
	require.NoError(t, err)
}

func (f *fixture) filter(plants ...string) repo.Filter {
	ids := make([]uint, 0, len(plants))
	for _, p := range plants {
		ids = append(ids, f.plantIDs[p])
	}
	return repo.Filter{
		From:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		PlantIDs: ids,
		Status:   repo.StatusAll,
	}
}

func TestTruckReport_FiltersByDateAndPlant(t *testing.T) {
	f := newFixture(t)
	aug := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	sep := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	f.dispatch(t, "AB12", aug, "Plant A", "Plant B")
	f.dispatch(t, "CD34", sep, "Plant A")

	rows, err := f.svc.TruckReport(f.filter("Plant A", "Plant B"))
	require.NoError(t, err)
	require.Len(t, rows, 2, "September dispatch is outside the window")
	for _, r := range rows {
		require.Equal(t, "AB12", r.TruckNo)
	}

	rows, err = f.svc.TruckReport(f.filter("Plant B"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Plant B", rows[0].PlantName)
}

func TestTruckReport_RequiresFilters(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TruckReport(repo.Filter{PlantIDs: []uint{1}})
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	bad := f.filter("Plant A")
	bad.PlantIDs = nil
	_, err = f.svc.TruckReport(bad)
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestTruckSchedule_StatusNarrowing(t *testing.T) {
	f := newFixture(t)
	aug := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	f.dispatch(t, "AB12", aug, "Plant A", "Plant B")

	_, err := f.trucks.UpdateCheckStatus("AB12", "Plant A", txService.CheckIn, "")
	require.NoError(t, err)

	query := func(st repo.StatusFilter) []repo.Row {
		fl := f.filter("Plant A", "Plant B")
		fl.Status = st
		rows, err := f.svc.TruckSchedule(fl)
		require.NoError(t, err)
		return rows
	}

	require.Len(t, query(repo.StatusAll), 2)

	inTransit := query(repo.StatusInTransit)
	require.Len(t, inTransit, 1)
	require.Equal(t, "Plant A", inTransit[0].PlantName)
	require.NotNil(t, inTransit[0].CheckInTime)
	require.Nil(t, inTransit[0].CheckOutTime)

	dispatched := query(repo.StatusDispatched)
	require.Len(t, dispatched, 1)
	require.Equal(t, "Plant B", dispatched[0].PlantName)

	require.Empty(t, query(repo.StatusCheckedOut))

	fl := f.filter("Plant A")
	fl.Status = repo.StatusFilter("Lost")
	_, err = f.svc.TruckSchedule(fl)
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestExportXLSX(t *testing.T) {
	f := newFixture(t)
	aug := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	f.dispatch(t, "AB12", aug, "Plant A")

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportXLSX(f.filter("Plant A"), &buf))

	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()

	rows, err := x.GetRows(x.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one data row")
	require.Equal(t, "Truck No", rows[0][0])
	require.Equal(t, "AB12", rows[1][0])
	require.Equal(t, "Plant A", rows[1][2])
}
