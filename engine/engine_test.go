package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/dkurnia/tabledesk/models"
	"github.com/dkurnia/tabledesk/store"
)

// testNow is the pinned clock for every engine test: 2025-08-07 14:00.
var testNow = time.Date(2025, 8, 7, 14, 0, 0, 0, time.UTC)

const testToday = "2025-08-07"

// newTestEngine builds an engine over the given collections with a
// fixed clock and sequential ids.
func newTestEngine(t *testing.T, tables []models.Table, ledger []models.Reservation) *Engine {
	t.Helper()
	st := store.New()
	st.Replace(tables, ledger)

	e := New(st)
	e.Now = func() time.Time { return testNow }
	seq := 0
	e.NewID = func() string {
		seq++
		return fmt.Sprintf("res-%04d", seq)
	}
	return e
}

func threeTables() []models.Table {
	return []models.Table{
		{ID: "1", Number: 1, Seats: 2, Status: models.TableAvailable},
		{ID: "2", Number: 2, Seats: 4, Status: models.TableAvailable},
		{ID: "3", Number: 3, Seats: 6, Status: models.TableAvailable},
	}
}

func confirmedReservation(id, tableID, date, timeOfDay string, partySize int) models.Reservation {
	return models.Reservation{
		ID:        id,
		TableID:   tableID,
		GuestName: "Guest " + id,
		Phone:     "555-0100",
		PartySize: partySize,
		Date:      date,
		Time:      timeOfDay,
		Status:    models.ReservationConfirmed,
	}
}
