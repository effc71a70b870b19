package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkurnia/tabledesk/models"
)

func TestHasConflictSymmetry(t *testing.T) {
	ledger := []models.Reservation{
		confirmedReservation("r1", "2", "2025-08-07", "15:00", 2),
	}

	assert.True(t, HasConflict(ledger, "2", "2025-08-07", "15:00", ""))

	// Different table, date or time never conflicts.
	assert.False(t, HasConflict(ledger, "1", "2025-08-07", "15:00", ""))
	assert.False(t, HasConflict(ledger, "2", "2025-08-08", "15:00", ""))
	assert.False(t, HasConflict(ledger, "2", "2025-08-07", "15:30", ""))

	// Cancelling releases the slot.
	ledger[0].Status = models.ReservationCancelled
	assert.False(t, HasConflict(ledger, "2", "2025-08-07", "15:00", ""))

	// So does completing or deleting.
	ledger[0].Status = models.ReservationCompleted
	assert.False(t, HasConflict(ledger, "2", "2025-08-07", "15:00", ""))
	assert.False(t, HasConflict(nil, "2", "2025-08-07", "15:00", ""))
}

func TestHasConflictSelfExclusion(t *testing.T) {
	ledger := []models.Reservation{
		confirmedReservation("r1", "2", "2025-08-07", "15:00", 2),
	}

	assert.False(t, HasConflict(ledger, "2", "2025-08-07", "15:00", "r1"))

	// Another reservation on the same slot still conflicts.
	ledger = append(ledger, confirmedReservation("r2", "2", "2025-08-07", "15:00", 4))
	assert.True(t, HasConflict(ledger, "2", "2025-08-07", "15:00", "r1"))
}

func TestReconcileDrivesTableFromReservation(t *testing.T) {
	tables := threeTables()
	ledger := []models.Reservation{
		confirmedReservation("r1", "1", testToday, "19:00", 2),
	}

	out := Reconcile(tables, ledger, testToday)
	assert.Equal(t, models.TableReserved, out[0].Status)
	if assert.NotNil(t, out[0].Reservation) {
		assert.Equal(t, "r1", out[0].Reservation.ID)
	}

	// Seated reservation makes the table occupied.
	ledger[0].Status = models.ReservationSeated
	out = Reconcile(tables, ledger, testToday)
	assert.Equal(t, models.TableOccupied, out[0].Status)

	// Other tables stay untouched.
	assert.Equal(t, models.TableAvailable, out[1].Status)
	assert.Nil(t, out[1].Reservation)
}

func TestReconcileIgnoresOtherDays(t *testing.T) {
	tables := threeTables()
	ledger := []models.Reservation{
		confirmedReservation("r1", "1", "2025-08-08", "19:00", 2),
	}

	out := Reconcile(tables, ledger, testToday)
	assert.Equal(t, models.TableAvailable, out[0].Status)
	assert.Nil(t, out[0].Reservation)
}

func TestReconcileResetsReservationDrivenTable(t *testing.T) {
	ref := confirmedReservation("r1", "1", testToday, "19:00", 2)
	since := testNow
	tables := []models.Table{
		{ID: "1", Number: 1, Seats: 2, Status: models.TableReserved, Reservation: &ref},
		{ID: "2", Number: 2, Seats: 4, Status: models.TableOccupied, Reservation: &ref, OccupiedSince: &since},
	}

	out := Reconcile(tables, nil, testToday)
	for _, tb := range out {
		assert.Equal(t, models.TableAvailable, tb.Status)
		assert.Nil(t, tb.Reservation)
		assert.Nil(t, tb.OccupiedSince)
	}
}

func TestReconcileNeverTouchesWalkInsOrCleaning(t *testing.T) {
	since := testNow
	tables := []models.Table{
		// Walk-in occupancy has no reservation back-reference.
		{ID: "1", Number: 1, Seats: 2, Status: models.TableOccupied, OccupiedSince: &since},
		{ID: "2", Number: 2, Seats: 4, Status: models.TableCleaning},
	}

	out := Reconcile(tables, nil, testToday)
	assert.Equal(t, models.TableOccupied, out[0].Status)
	if assert.NotNil(t, out[0].OccupiedSince) {
		assert.Equal(t, since, *out[0].OccupiedSince)
	}
	assert.Equal(t, models.TableCleaning, out[1].Status)
}

func TestReconcileFirstLedgerMatchWins(t *testing.T) {
	tables := threeTables()
	ledger := []models.Reservation{
		confirmedReservation("early", "1", testToday, "18:00", 2),
		confirmedReservation("late", "1", testToday, "21:00", 2),
	}

	out := Reconcile(tables, ledger, testToday)
	if assert.NotNil(t, out[0].Reservation) {
		assert.Equal(t, "early", out[0].Reservation.ID)
	}

	// Swapping ledger order swaps the winner; no time-based preference.
	ledger[0], ledger[1] = ledger[1], ledger[0]
	out = Reconcile(tables, ledger, testToday)
	assert.Equal(t, "late", out[0].Reservation.ID)
}

func TestReconcileIdempotence(t *testing.T) {
	since := testNow
	tables := []models.Table{
		{ID: "1", Number: 1, Seats: 2, Status: models.TableAvailable},
		{ID: "2", Number: 2, Seats: 4, Status: models.TableOccupied, OccupiedSince: &since},
		{ID: "3", Number: 3, Seats: 6, Status: models.TableCleaning},
	}
	ledger := []models.Reservation{
		confirmedReservation("r1", "1", testToday, "19:00", 2),
		confirmedReservation("r2", "3", "2025-08-09", "19:00", 4),
	}

	once := Reconcile(tables, ledger, testToday)
	twice := Reconcile(once, ledger, testToday)
	assert.Equal(t, once, twice)
}
