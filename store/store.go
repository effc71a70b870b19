package store

import (
	"sync"
	"time"

	"github.com/dkurnia/tabledesk/models"
)

// Store holds the two session collections: the table registry and the
// reservation ledger. Mutations are whole-collection replacements; a
// writer builds new slices and installs them under the lock, so readers
// always see a consistent snapshot and returned slices are safe to keep.
type Store struct {
	mu           sync.RWMutex
	tables       []models.Table
	reservations []models.Reservation
}

func New() *Store {
	return &Store{}
}

// Tables returns a copy of the table registry.
func (s *Store) Tables() []models.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTables(s.tables)
}

// Reservations returns a copy of the reservation ledger in insertion order.
func (s *Store) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyReservations(s.reservations)
}

// Snapshot returns copies of both collections taken under one lock.
func (s *Store) Snapshot() ([]models.Table, []models.Reservation) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTables(s.tables), copyReservations(s.reservations)
}

// Replace installs both collections at once.
func (s *Store) Replace(tables []models.Table, reservations []models.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = copyTables(tables)
	s.reservations = copyReservations(reservations)
}

// Update runs fn on a snapshot under the write lock and installs the
// collections it returns. If fn returns an error nothing is replaced.
// fn must treat its inputs as read-only and return freshly built slices
// for anything it changes.
func (s *Store) Update(fn func(tables []models.Table, reservations []models.Reservation) ([]models.Table, []models.Reservation, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables, reservations, err := fn(copyTables(s.tables), copyReservations(s.reservations))
	if err != nil {
		return err
	}
	s.tables = copyTables(tables)
	s.reservations = copyReservations(reservations)
	return nil
}

func copyTables(src []models.Table) []models.Table {
	dst := make([]models.Table, len(src))
	copy(dst, src)
	return dst
}

func copyReservations(src []models.Reservation) []models.Reservation {
	dst := make([]models.Reservation, len(src))
	copy(dst, src)
	return dst
}

// DefaultFloor is the seed layout the service starts with: a two-top, a
// four-top seated half an hour ago by a walk-in, and a six-top being
// cleaned.
func DefaultFloor(now time.Time) []models.Table {
	seated := now.Add(-30 * time.Minute)
	return []models.Table{
		{ID: "1", Number: 1, Seats: 2, Status: models.TableAvailable, Position: models.Position{X: 120, Y: 50}},
		{ID: "2", Number: 2, Seats: 4, Status: models.TableOccupied, Position: models.Position{X: 280, Y: 50}, OccupiedSince: &seated},
		{ID: "3", Number: 3, Seats: 6, Status: models.TableCleaning, Position: models.Position{X: 440, Y: 50}},
	}
}
