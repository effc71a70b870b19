package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/dkurnia/tabledesk/models"
)

// BookingSlots is the half-hour grid the booking forms offer.
var BookingSlots = []string{
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
	"18:00", "18:30", "19:00", "19:30", "20:00", "20:30",
	"21:00", "21:30", "22:00",
}

// ReservationInput carries the editable reservation fields for create
// and edit. Status is not part of it; creation always starts confirmed
// and status changes go through SetReservationStatus.
type ReservationInput struct {
	TableID         string
	GuestName       string
	Phone           string
	PartySize       int
	Date            string
	Time            string
	SpecialRequests string
}

func (in ReservationInput) validate() error {
	if strings.TrimSpace(in.GuestName) == "" {
		return fmt.Errorf("%w: guest name is required", ErrValidation)
	}
	if in.TableID == "" {
		return fmt.Errorf("%w: table is required", ErrValidation)
	}
	if in.PartySize <= 0 {
		return fmt.Errorf("%w: party size must be positive", ErrValidation)
	}
	if _, err := time.Parse(models.DateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date must be in %s format", ErrValidation, models.DateLayout)
	}
	if _, err := time.Parse(models.TimeLayout, in.Time); err != nil {
		return fmt.Errorf("%w: time must be in %s format", ErrValidation, models.TimeLayout)
	}
	return nil
}

// CreateReservation validates the input, rejects slot conflicts and
// appends a confirmed reservation to the ledger.
func (e *Engine) CreateReservation(in ReservationInput) (models.Reservation, error) {
	if err := in.validate(); err != nil {
		return models.Reservation{}, err
	}

	var created models.Reservation
	err := e.Store.Update(func(tables []models.Table, ledger []models.Reservation) ([]models.Table, []models.Reservation, error) {
		if HasConflict(ledger, in.TableID, in.Date, in.Time, "") {
			return nil, nil, ErrSlotTaken
		}
		created = models.Reservation{
			ID:              e.NewID(),
			TableID:         in.TableID,
			GuestName:       in.GuestName,
			Phone:           in.Phone,
			PartySize:       in.PartySize,
			Date:            in.Date,
			Time:            in.Time,
			SpecialRequests: in.SpecialRequests,
			Status:          models.ReservationConfirmed,
		}
		ledger = append(ledger, created)
		return Reconcile(tables, ledger, e.Today()), ledger, nil
	})
	return created, err
}

// UpdateReservation replaces the editable fields of an existing
// reservation. The conflict check only runs when the booking slot
// actually moved, and excludes the reservation itself.
func (e *Engine) UpdateReservation(id string, in ReservationInput) (models.Reservation, error) {
	if err := in.validate(); err != nil {
		return models.Reservation{}, err
	}

	var updated models.Reservation
	err := e.Store.Update(func(tables []models.Table, ledger []models.Reservation) ([]models.Table, []models.Reservation, error) {
		idx := findReservation(ledger, id)
		if idx < 0 {
			return nil, nil, ErrReservationNotFound
		}
		current := ledger[idx]

		slotMoved := in.TableID != current.TableID || in.Date != current.Date || in.Time != current.Time
		if slotMoved && HasConflict(ledger, in.TableID, in.Date, in.Time, id) {
			return nil, nil, ErrSlotTaken
		}

		updated = current
		updated.TableID = in.TableID
		updated.GuestName = in.GuestName
		updated.Phone = in.Phone
		updated.PartySize = in.PartySize
		updated.Date = in.Date
		updated.Time = in.Time
		updated.SpecialRequests = in.SpecialRequests
		ledger[idx] = updated

		return Reconcile(tables, ledger, e.Today()), ledger, nil
	})
	return updated, err
}

// SetReservationStatus moves a reservation through its lifecycle.
func (e *Engine) SetReservationStatus(id, status string) (models.Reservation, error) {
	if !models.ValidReservationStatus(status) {
		return models.Reservation{}, fmt.Errorf("%w: unknown reservation status %q", ErrValidation, status)
	}

	var updated models.Reservation
	err := e.Store.Update(func(tables []models.Table, ledger []models.Reservation) ([]models.Table, []models.Reservation, error) {
		idx := findReservation(ledger, id)
		if idx < 0 {
			return nil, nil, ErrReservationNotFound
		}
		updated = ledger[idx]
		updated.Status = status
		ledger[idx] = updated

		return Reconcile(tables, ledger, e.Today()), ledger, nil
	})
	return updated, err
}

// DeleteReservation removes a reservation from the ledger entirely.
// Cancellation is a status change, not a delete; this is the explicit
// remove action.
func (e *Engine) DeleteReservation(id string) error {
	return e.Store.Update(func(tables []models.Table, ledger []models.Reservation) ([]models.Table, []models.Reservation, error) {
		idx := findReservation(ledger, id)
		if idx < 0 {
			return nil, nil, ErrReservationNotFound
		}
		ledger = append(ledger[:idx], ledger[idx+1:]...)
		return Reconcile(tables, ledger, e.Today()), ledger, nil
	})
}
