package engine

import (
	"fmt"

	"github.com/dkurnia/tabledesk/models"
)

// ChangeTableStatus applies one of the manual floor transitions:
// occupied -> cleaning (free the table), cleaning -> available and
// reserved -> occupied (seat the reserved party). Anything else is
// rejected without touching state.
func (e *Engine) ChangeTableStatus(tableID, newStatus string) (models.Table, error) {
	var changed models.Table
	err := e.Store.Update(func(tables []models.Table, ledger []models.Reservation) ([]models.Table, []models.Reservation, error) {
		idx := findTable(tables, tableID)
		if idx < 0 {
			return nil, nil, ErrTableNotFound
		}
		t := tables[idx]
		if !transitionAllowed(t.Status, newStatus) {
			return nil, nil, fmt.Errorf("%w: %s -> %s", ErrUnsupportedTransition, t.Status, newStatus)
		}

		switch newStatus {
		case models.TableOccupied:
			// Seating a reserved party keeps the reservation reference.
			now := e.Now()
			t.OccupiedSince = &now
		case models.TableCleaning:
			t.OccupiedSince = nil
			t.Reservation = nil
		default:
			t.OccupiedSince = nil
		}
		t.Status = newStatus
		tables[idx] = t
		changed = t
		return tables, ledger, nil
	})
	return changed, err
}

// SeatWalkIn seats a walk-in party at a free table. It synthesizes a
// seated reservation for right now, appends it to the ledger and flips
// the table to occupied directly; reconciliation is not involved. The
// table keeps no reservation back-reference, which is what makes
// walk-in occupancy sticky: reconciliation only releases tables whose
// occupancy it derived itself.
func (e *Engine) SeatWalkIn(tableID string, partySize int) (models.Reservation, models.Table, error) {
	if partySize <= 0 {
		return models.Reservation{}, models.Table{}, fmt.Errorf("%w: party size must be positive", ErrValidation)
	}

	var (
		walkIn models.Reservation
		seated models.Table
	)
	err := e.Store.Update(func(tables []models.Table, ledger []models.Reservation) ([]models.Table, []models.Reservation, error) {
		idx := findTable(tables, tableID)
		if idx < 0 {
			return nil, nil, ErrTableNotFound
		}
		t := tables[idx]
		if t.Status != models.TableAvailable {
			return nil, nil, ErrTableNotAvailable
		}

		now := e.Now()
		id := e.NewID()
		walkIn = models.Reservation{
			ID:        id,
			TableID:   tableID,
			GuestName: "Guest " + guestSuffix(id),
			PartySize: partySize,
			Date:      now.Format(models.DateLayout),
			Time:      now.Format(models.TimeLayout),
			Status:    models.ReservationSeated,
		}
		ledger = append(ledger, walkIn)

		t.Status = models.TableOccupied
		t.OccupiedSince = &now
		tables[idx] = t
		seated = t
		return tables, ledger, nil
	})
	return walkIn, seated, err
}

// CreateTable adds a table to the registry. The floor normally runs on
// the seeded layout; this exists for layout changes between services.
func (e *Engine) CreateTable(number, seats int, pos models.Position) (models.Table, error) {
	if number <= 0 {
		return models.Table{}, fmt.Errorf("%w: table number must be positive", ErrValidation)
	}
	if seats <= 0 {
		return models.Table{}, fmt.Errorf("%w: seats must be positive", ErrValidation)
	}

	var created models.Table
	err := e.Store.Update(func(tables []models.Table, ledger []models.Reservation) ([]models.Table, []models.Reservation, error) {
		for _, t := range tables {
			if t.Number == number {
				return nil, nil, fmt.Errorf("%w: table number %d already in use", ErrValidation, number)
			}
		}
		created = models.Table{
			ID:       e.NewID(),
			Number:   number,
			Seats:    seats,
			Status:   models.TableAvailable,
			Position: pos,
		}
		return append(tables, created), ledger, nil
	})
	return created, err
}

// DeleteTable removes a table. Reservations pointing at it stay in the
// ledger and simply stop resolving to a table number in display.
func (e *Engine) DeleteTable(tableID string) error {
	return e.Store.Update(func(tables []models.Table, ledger []models.Reservation) ([]models.Table, []models.Reservation, error) {
		idx := findTable(tables, tableID)
		if idx < 0 {
			return nil, nil, ErrTableNotFound
		}
		return append(tables[:idx], tables[idx+1:]...), ledger, nil
	})
}

func guestSuffix(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}
