package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"logitrack/database"
	"logitrack/entities"
	"logitrack/pkg/apperr"
	plantRepoImp "logitrack/pkg/plant/repositoryImp"
	plantSvcImp "logitrack/pkg/plant/serviceImp"
	"logitrack/pkg/routing/service"
	txRepoImp "logitrack/pkg/transaction/repositoryImp"
	txService "logitrack/pkg/transaction/service"
	txSvcImp "logitrack/pkg/transaction/serviceImp"
)

type fixture struct {
	routing service.RoutingService
	trucks  txService.TruckTransactionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := database.Open("", filepath.Join(t.TempDir(), "test.db"))
	for _, name := range []string{"Plant A", "Plant B", "Plant C"} {
		require.NoError(t, db.Create(&entities.Plant{PlantName: name}).Error)
	}
	repo := txRepoImp.New(db)
	plants := plantSvcImp.NewPlantService(plantRepoImp.New(db))
	return &fixture{
		routing: NewRoutingService(repo),
		trucks:  txSvcImp.NewTruckTransactionService(repo, plants),
	}
}

func (f *fixture) dispatch(t *testing.T, truckNo string, stops ...string) {
	t.Helper()
	var lines []txService.LineItem
	for i, plant := range stops {
		lines = append(lines, txService.LineItem{
			PlantName: plant,
			Qty:       decimal.NewFromInt(5),
			Priority:  i + 1,
			Remarks:   "drop at " + plant,
		})
	}
	_, err := f.trucks.Submit(txService.TransactionForm{TruckNo: truckNo, CityName: "Nagpur"}, lines)
	require.NoError(t, err)
}

func (f *fixture) check(t *testing.T, truckNo, plant string, action txService.CheckAction) {
	t.Helper()
	_, err := f.trucks.UpdateCheckStatus(truckNo, plant, action, "INV-1")
	require.NoError(t, err)
}

func TestPriorityStatus_FollowsVisitOrder(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, "AB12", "Plant A", "Plant B")

	st, err := f.routing.PriorityStatus("AB12", "Plant A")
	require.NoError(t, err)
	require.True(t, st.HasPending)
	require.True(t, st.CanProceed)
	require.Equal(t, 1, st.NextPriority)
	require.Equal(t, "Plant A", st.NextPlant)

	// Plant B may not act while Plant A is unfinished.
	st, err = f.routing.PriorityStatus("AB12", "Plant B")
	require.NoError(t, err)
	require.True(t, st.HasPending)
	require.False(t, st.CanProceed)
	require.Equal(t, "Plant A", st.NextPlant)

	f.check(t, "AB12", "Plant A", txService.CheckIn)
	f.check(t, "AB12", "Plant A", txService.CheckOut)

	st, err = f.routing.PriorityStatus("AB12", "Plant B")
	require.NoError(t, err)
	require.True(t, st.CanProceed)
	require.Equal(t, 2, st.NextPriority)
}

func TestPriorityStatus_NoActiveTransaction(t *testing.T) {
	f := newFixture(t)
	st, err := f.routing.PriorityStatus("ZZ99", "Plant A")
	require.NoError(t, err)
	require.False(t, st.HasPending)
}

func TestPriorityStatus_PlantNotInTransaction(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, "AB12", "Plant A")

	_, err := f.routing.PriorityStatus("AB12", "Plant C")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestLastFinishedPlant(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, "AB12", "Plant A", "Plant B", "Plant C")

	last, err := f.routing.LastFinishedPlant("AB12")
	require.NoError(t, err)
	require.Empty(t, last)

	f.check(t, "AB12", "Plant A", txService.CheckIn)
	f.check(t, "AB12", "Plant A", txService.CheckOut)
	last, err = f.routing.LastFinishedPlant("AB12")
	require.NoError(t, err)
	require.Equal(t, "Plant A", last)

	f.check(t, "AB12", "Plant B", txService.CheckIn)
	f.check(t, "AB12", "Plant B", txService.CheckOut)
	last, err = f.routing.LastFinishedPlant("AB12")
	require.NoError(t, err)
	require.Equal(t, "Plant B", last)
}

func TestTrucksAwaitingCheckInAndOut(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, "AB12", "Plant A")
	f.dispatch(t, "CD34", "Plant A")

	in, err := f.routing.TrucksAwaitingCheckIn("plant a")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"AB12", "CD34"}, in)

	out, err := f.routing.TrucksAwaitingCheckOut("Plant A")
	require.NoError(t, err)
	require.Empty(t, out)

	f.check(t, "AB12", "Plant A", txService.CheckIn)

	in, err = f.routing.TrucksAwaitingCheckIn("Plant A")
	require.NoError(t, err)
	require.Equal(t, []string{"CD34"}, in)

	out, err = f.routing.TrucksAwaitingCheckOut("Plant A")
	require.NoError(t, err)
	require.Equal(t, []string{"AB12"}, out)

	// Checked-out stops leave both queues.
	f.check(t, "AB12", "Plant A", txService.CheckOut)
	out, err = f.routing.TrucksAwaitingCheckOut("Plant A")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDetailRemarks(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, "AB12", "Plant A", "Plant B")

	remarks, err := f.routing.DetailRemarks("AB12", "plant b")
	require.NoError(t, err)
	require.Equal(t, "drop at Plant B", remarks)

	_, err = f.routing.DetailRemarks("AB12", "Plant C")
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = f.routing.DetailRemarks("ZZ99", "Plant A")
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPlantQuantities(t *testing.T) {
	f := newFixture(t)

	lines := []txService.LineItem{
		{PlantName: "Plant A", LoadingSlipNo: "LS-1", Qty: decimal.NewFromInt(10), Priority: 1},
		{PlantName: "Plant A", LoadingSlipNo: "LS-2", Qty: decimal.NewFromInt(5), Priority: 3},
		{PlantName: "Plant B", LoadingSlipNo: "LS-3", Qty: decimal.NewFromInt(7), Priority: 2},
	}
	_, err := f.trucks.Submit(txService.TransactionForm{TruckNo: "AB12"}, lines)
	require.NoError(t, err)

	qs, err := f.routing.PlantQuantities("AB12")
	require.NoError(t, err)
	require.Len(t, qs, 2)

	// Grouped per plant, ordered by the plant's earliest priority.
	require.Equal(t, "Plant A", qs[0].PlantName)
	require.True(t, qs[0].Quantity.Equal(decimal.NewFromInt(15)), "got %s", qs[0].Quantity)
	require.Equal(t, 1, qs[0].Priority)
	require.Equal(t, "Plant B", qs[1].PlantName)
	require.True(t, qs[1].Quantity.Equal(decimal.NewFromInt(7)), "got %s", qs[1].Quantity)

	qs, err = f.routing.PlantQuantities("ZZ99")
	require.NoError(t, err)
	require.Empty(t, qs)
}
