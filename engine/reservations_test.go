package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkurnia/tabledesk/models"
)

func TestCreateReservationValidation(t *testing.T) {
	e := newTestEngine(t, threeTables(), nil)

	cases := []struct {
		name string
		in   ReservationInput
	}{
		{"missing guest name", ReservationInput{TableID: "1", PartySize: 2, Date: testToday, Time: "19:00"}},
		{"missing table", ReservationInput{GuestName: "Ana", PartySize: 2, Date: testToday, Time: "19:00"}},
		{"zero party size", ReservationInput{TableID: "1", GuestName: "Ana", Date: testToday, Time: "19:00"}},
		{"bad date", ReservationInput{TableID: "1", GuestName: "Ana", PartySize: 2, Date: "07.08.2025", Time: "19:00"}},
		{"bad time", ReservationInput{TableID: "1", GuestName: "Ana", PartySize: 2, Date: testToday, Time: "7pm"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.CreateReservation(tc.in)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, e.Store.Reservations())
		})
	}
}

func TestCreateReservationReservesTable(t *testing.T) {
	e := newTestEngine(t, threeTables(), nil)

	created, err := e.CreateReservation(ReservationInput{
		TableID:   "1",
		GuestName: "Ana",
		Phone:     "555-0101",
		PartySize: 2,
		Date:      testToday,
		Time:      "19:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationConfirmed, created.Status)
	assert.NotEmpty(t, created.ID)

	tables := e.Store.Tables()
	assert.Equal(t, models.TableReserved, tables[0].Status)
	if assert.NotNil(t, tables[0].Reservation) {
		assert.Equal(t, created.ID, tables[0].Reservation.ID)
	}
}

func TestDoubleBookingRejected(t *testing.T) {
	e := newTestEngine(t, threeTables(), []models.Reservation{
		confirmedReservation("r1", "2", "2025-08-07", "15:00", 2),
	})

	_, err := e.CreateReservation(ReservationInput{
		TableID:   "2",
		GuestName: "Boris",
		PartySize: 4,
		Date:      "2025-08-07",
		Time:      "15:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, e.Store.Reservations(), 1)
}

func TestUpdateReservationSameSlotNoSelfConflict(t *testing.T) {
	e := newTestEngine(t, threeTables(), []models.Reservation{
		confirmedReservation("r1", "2", testToday, "15:00", 2),
	})

	updated, err := e.UpdateReservation("r1", ReservationInput{
		TableID:   "2",
		GuestName: "Renamed",
		PartySize: 3,
		Date:      testToday,
		Time:      "15:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.GuestName)
	assert.Equal(t, 3, updated.PartySize)
	// Status survives an edit of the booking fields.
	assert.Equal(t, models.ReservationConfirmed, updated.Status)
}

func TestUpdateReservationMovingToTakenSlot(t *testing.T) {
	e := newTestEngine(t, threeTables(), []models.Reservation{
		confirmedReservation("r1", "1", testToday, "19:00", 2),
		confirmedReservation("r2", "2", testToday, "19:00", 2),
	})

	_, err := e.UpdateReservation("r1", ReservationInput{
		TableID:   "2",
		GuestName: "Guest r1",
		PartySize: 2,
		Date:      testToday,
		Time:      "19:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Nothing moved.
	ledger := e.Store.Reservations()
	assert.Equal(t, "1", ledger[0].TableID)
}

func TestUpdateReservationUnknownID(t *testing.T) {
	e := newTestEngine(t, threeTables(), nil)

	_, err := e.UpdateReservation("ghost", ReservationInput{
		TableID:   "1",
		GuestName: "Ana",
		PartySize: 2,
		Date:      testToday,
		Time:      "19:00",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestSetReservationStatus(t *testing.T) {
	e := newTestEngine(t, threeTables(), []models.Reservation{
		confirmedReservation("r1", "1", testToday, "19:00", 2),
	})

	updated, err := e.SetReservationStatus("r1", models.ReservationSeated)
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationSeated, updated.Status)
	assert.Equal(t, models.TableOccupied, e.Store.Tables()[0].Status)

	_, err = e.SetReservationStatus("r1", "waiting")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = e.SetReservationStatus("ghost", models.ReservationSeated)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

// Reservation -> seating -> free, end to end over the engine.
func TestReservationLifecycleDrivesTable(t *testing.T) {
	e := newTestEngine(t, threeTables(), nil)

	created, err := e.CreateReservation(ReservationInput{
		TableID:   "1",
		GuestName: "Ana",
		PartySize: 2,
		Date:      testToday,
		Time:      "19:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.TableReserved, e.Store.Tables()[0].Status)

	_, err = e.SetReservationStatus(created.ID, models.ReservationSeated)
	assert.NoError(t, err)
	table := e.Store.Tables()[0]
	assert.Equal(t, models.TableOccupied, table.Status)
	if assert.NotNil(t, table.Reservation) {
		assert.Equal(t, created.ID, table.Reservation.ID)
	}

	assert.NoError(t, e.DeleteReservation(created.ID))
	table = e.Store.Tables()[0]
	assert.Equal(t, models.TableAvailable, table.Status)
	assert.Nil(t, table.Reservation)
	assert.Nil(t, table.OccupiedSince)
	assert.Empty(t, e.Store.Reservations())
}

func TestDeleteReservationUnknownID(t *testing.T) {
	e := newTestEngine(t, threeTables(), nil)
	assert.ErrorIs(t, e.DeleteReservation("ghost"), ErrReservationNotFound)
}

func TestReservationsSearch(t *testing.T) {
	e := newTestEngine(t, threeTables(), []models.Reservation{
		{ID: "r1", TableID: "1", GuestName: "Ana Petrova", Phone: "555-0101", PartySize: 2, Date: testToday, Time: "18:00", Status: models.ReservationConfirmed},
		{ID: "r2", TableID: "2", GuestName: "Boris", Phone: "777-0202", PartySize: 4, Date: testToday, Time: "19:00", Status: models.ReservationConfirmed},
	})

	assert.Len(t, e.Reservations(""), 2)

	byName := e.Reservations("ana")
	if assert.Len(t, byName, 1) {
		assert.Equal(t, "r1", byName[0].ID)
	}

	byPhone := e.Reservations("777")
	if assert.Len(t, byPhone, 1) {
		assert.Equal(t, "r2", byPhone[0].ID)
	}

	assert.Empty(t, e.Reservations("nobody"))
}

func TestAvailableTables(t *testing.T) {
	e := newTestEngine(t, threeTables(), []models.Reservation{
		confirmedReservation("r1", "1", testToday, "19:00", 2),
	})

	// Table 1 is booked at 19:00, table 2 fits, table 3 fits.
	free := e.AvailableTables(testToday, "19:00", 4, "")
	ids := make([]string, 0, len(free))
	for _, tb := range free {
		ids = append(ids, tb.ID)
	}
	assert.Equal(t, []string{"2", "3"}, ids)

	// Excluding the booking's own id frees its table again.
	free = e.AvailableTables(testToday, "19:00", 2, "r1")
	assert.Len(t, free, 3)

	// Party too large for every table.
	assert.Empty(t, e.AvailableTables(testToday, "20:00", 7, ""))
}
