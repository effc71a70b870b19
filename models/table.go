package models

import "time"

// Table statuses shown on the floor plan.
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
	TableCleaning  = "cleaning"
)

// Position is the table's coordinate on the floor plan. Layout only,
// nothing in the booking rules reads it.
type Position struct {
	X float64
	Y float64
}

type Table struct {
	ID       string
	Number   int
	Seats    int
	Status   string
	Position Position

	// Reservation is a non-owning copy of the reservation currently
	// driving this table's status. The ledger owns the record; this
	// field is written by reconciliation and walk-in seating only.
	Reservation *Reservation

	// OccupiedSince is set when the table is seated into "occupied"
	// and cleared when it leaves that status.
	OccupiedSince *time.Time
}

// ReservationDriven reports whether the table's occupied/reserved state
// comes from a reservation rather than a manually seated walk-in.
func (t Table) ReservationDriven() bool {
	return t.Status == TableReserved || (t.Status == TableOccupied && t.Reservation != nil)
}
