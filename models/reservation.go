package models

// Reservation lifecycle statuses.
const (
	ReservationConfirmed = "confirmed"
	ReservationSeated    = "seated"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
)

// Date and time layouts used throughout the booking rules. A booking
// slot is identified by the (Date, Time) string pair compared verbatim.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Reservation struct {
	ID              string
	TableID         string
	GuestName       string
	Phone           string
	PartySize       int
	Date            string // DateLayout
	Time            string // TimeLayout
	SpecialRequests string
	Status          string
}

// Active reports whether the reservation still claims its booking slot.
// Cancelled and completed reservations stay in the ledger for history
// but no longer block the slot or drive a table's status.
func (r Reservation) Active() bool {
	return r.Status != ReservationCancelled && r.Status != ReservationCompleted
}

// ValidReservationStatus reports whether s is one of the four lifecycle
// statuses.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationConfirmed, ReservationSeated, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}
