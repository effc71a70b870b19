package engine

import (
	"github.com/dkurnia/tabledesk/models"
)

// HasConflict reports whether the ledger already holds an active
// reservation for the exact (tableID, date, time) slot. Cancelled and
// completed reservations never conflict. excludeID skips one
// reservation so an edit does not collide with itself; pass "" when
// creating.
func HasConflict(ledger []models.Reservation, tableID, date, timeOfDay, excludeID string) bool {
	for _, r := range ledger {
		if r.TableID == tableID &&
			r.Date == date &&
			r.Time == timeOfDay &&
			r.Active() &&
			r.ID != excludeID {
			return true
		}
	}
	return false
}

// Reconcile derives every table's status from the reservation ledger.
// It runs after each ledger change; today is the caller's current date
// and stays fixed for the whole pass.
//
// Per table: the first confirmed or seated reservation for today, in
// ledger order, drives the table to occupied (seated) or reserved
// (confirmed) and becomes its back-reference. When several same-day
// reservations qualify the first one in the ledger wins; that is a
// known limitation kept for determinism, not a nearest-time rule.
//
// Without such a reservation, a table whose occupied/reserved state was
// reservation-driven resets to available. Walk-in occupancy (occupied
// with no back-reference) and cleaning state are never overwritten;
// those only change through manual transitions.
func Reconcile(tables []models.Table, ledger []models.Reservation, today string) []models.Table {
	out := make([]models.Table, len(tables))
	for i, t := range tables {
		out[i] = reconcileTable(t, ledger, today)
	}
	return out
}

func reconcileTable(t models.Table, ledger []models.Reservation, today string) models.Table {
	for _, r := range ledger {
		if r.TableID != t.ID || r.Date != today {
			continue
		}
		if r.Status != models.ReservationConfirmed && r.Status != models.ReservationSeated {
			continue
		}
		ref := r
		if r.Status == models.ReservationSeated {
			t.Status = models.TableOccupied
		} else {
			t.Status = models.TableReserved
		}
		t.Reservation = &ref
		return t
	}

	if t.ReservationDriven() {
		t.Status = models.TableAvailable
		t.Reservation = nil
		t.OccupiedSince = nil
	}
	return t
}

// transitionAllowed is the manual state machine the host drives from
// the floor view. Seating a free table goes through walk-in seating
// because it needs a party size, so available->occupied is not here.
func transitionAllowed(from, to string) bool {
	switch from {
	case models.TableOccupied:
		return to == models.TableCleaning
	case models.TableCleaning:
		return to == models.TableAvailable
	case models.TableReserved:
		return to == models.TableOccupied
	}
	return false
}
