package engine

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkurnia/tabledesk/models"
	"github.com/dkurnia/tabledesk/store"
)

// Engine owns the booking rules over the session state: conflict
// checking, reconciliation of table statuses against the ledger, manual
// floor transitions, walk-in seating and the derived statistics. Every
// mutation rebuilds the affected collection and installs it through the
// store, then reconciles, so the registry and the ledger never drift
// apart.
type Engine struct {
	Store *store.Store

	// Now and NewID are swappable for deterministic tests.
	Now   func() time.Time
	NewID func() string
}

func New(st *store.Store) *Engine {
	return &Engine{
		Store: st,
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// Today returns the engine's current calendar date.
func (e *Engine) Today() string {
	return e.Now().Format(models.DateLayout)
}

// CheckConflict answers the conflict question against the live ledger.
func (e *Engine) CheckConflict(tableID, date, timeOfDay, excludeID string) bool {
	return HasConflict(e.Store.Reservations(), tableID, date, timeOfDay, excludeID)
}

// Tables lists the registry, optionally filtered by status.
func (e *Engine) Tables(status string) []models.Table {
	tables := e.Store.Tables()
	if status == "" {
		return tables
	}
	filtered := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FindTable looks a table up by id.
func (e *Engine) FindTable(tableID string) (models.Table, error) {
	for _, t := range e.Store.Tables() {
		if t.ID == tableID {
			return t, nil
		}
	}
	return models.Table{}, ErrTableNotFound
}

// Reservations lists the ledger in insertion order. A non-empty search
// term filters by guest name (case-insensitive) or phone substring.
func (e *Engine) Reservations(search string) []models.Reservation {
	ledger := e.Store.Reservations()
	if search == "" {
		return ledger
	}
	needle := strings.ToLower(search)
	filtered := make([]models.Reservation, 0, len(ledger))
	for _, r := range ledger {
		if strings.Contains(strings.ToLower(r.GuestName), needle) || strings.Contains(r.Phone, search) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FindReservation looks a reservation up by id.
func (e *Engine) FindReservation(id string) (models.Reservation, error) {
	for _, r := range e.Store.Reservations() {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Reservation{}, ErrReservationNotFound
}

// AvailableTables returns the tables that can take a party of the given
// size at (date, timeOfDay): enough seats and no conflicting active
// reservation. excludeID lets an edit ignore its own booking.
func (e *Engine) AvailableTables(date, timeOfDay string, partySize int, excludeID string) []models.Table {
	tables, ledger := e.Store.Snapshot()
	available := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if t.Seats < partySize {
			continue
		}
		if HasConflict(ledger, t.ID, date, timeOfDay, excludeID) {
			continue
		}
		available = append(available, t)
	}
	return available
}

// TableLabel resolves a table id to its display number. Orphaned
// references resolve to a sentinel instead of failing.
func TableLabel(tables []models.Table, tableID string) string {
	for _, t := range tables {
		if t.ID == tableID {
			return strconv.Itoa(t.Number)
		}
	}
	return "N/A"
}

func findTable(tables []models.Table, tableID string) int {
	for i, t := range tables {
		if t.ID == tableID {
			return i
		}
	}
	return -1
}

func findReservation(ledger []models.Reservation, id string) int {
	for i, r := range ledger {
		if r.ID == id {
			return i
		}
	}
	return -1
}
