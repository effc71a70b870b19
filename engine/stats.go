package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dkurnia/tabledesk/models"
)

// TableStatusCounts is the status breakdown of the floor.
type TableStatusCounts struct {
	Available int
	Occupied  int
	Reserved  int
	Cleaning  int
	Total     int
}

// PeakHour is one entry of the busiest-hours ranking.
type PeakHour struct {
	Hour   string
	Guests int
}

// DashboardStats is the full analytics snapshot the dashboard renders.
// It is recomputed from current state on every request; nothing here is
// cached.
type DashboardStats struct {
	Tables            TableStatusCounts
	ReservationsToday int
	GuestsToday       int
	TimeSlots         map[string]int
	PeakHours         []PeakHour
	AvgDiningMinutes  int
	OccupancyRate     int
	ReservationStatus map[string]int
}

// Dashboard computes the derived statistics over one consistent
// snapshot of both collections.
func (e *Engine) Dashboard() DashboardStats {
	tables, ledger := e.Store.Snapshot()
	now := e.Now()
	todays := FilterByDate(ledger, now.Format(models.DateLayout))

	guests := 0
	for _, r := range todays {
		guests += r.PartySize
	}

	return DashboardStats{
		Tables:            CountTableStatuses(tables),
		ReservationsToday: len(todays),
		GuestsToday:       guests,
		TimeSlots:         TimeSlotCounts(todays),
		PeakHours:         PeakHours(todays),
		AvgDiningMinutes:  AverageDiningMinutes(tables, now),
		OccupancyRate:     OccupancyRate(tables),
		ReservationStatus: CountReservationStatuses(todays),
	}
}

// CountTableStatuses tallies tables per status.
func CountTableStatuses(tables []models.Table) TableStatusCounts {
	counts := TableStatusCounts{Total: len(tables)}
	for _, t := range tables {
		switch t.Status {
		case models.TableAvailable:
			counts.Available++
		case models.TableOccupied:
			counts.Occupied++
		case models.TableReserved:
			counts.Reserved++
		case models.TableCleaning:
			counts.Cleaning++
		}
	}
	return counts
}

// FilterByDate returns the reservations booked for the given date,
// keeping ledger order.
func FilterByDate(ledger []models.Reservation, date string) []models.Reservation {
	out := make([]models.Reservation, 0, len(ledger))
	for _, r := range ledger {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// TimeSlotCounts buckets reservations into hour-wide slots keyed
// "H:00-H+1:00" and counts bookings per slot.
func TimeSlotCounts(reservations []models.Reservation) map[string]int {
	slots := make(map[string]int)
	for _, r := range reservations {
		h, ok := reservationHour(r)
		if !ok {
			continue
		}
		slots[fmt.Sprintf("%d:00-%d:00", h, h+1)]++
	}
	return slots
}

// PeakHours ranks hours by summed party size and returns the top three.
// Hours are grouped in first-seen order and sorted stably, so equal
// guest counts keep that order.
func PeakHours(reservations []models.Reservation) []PeakHour {
	var hours []int
	guests := make(map[int]int)
	for _, r := range reservations {
		h, ok := reservationHour(r)
		if !ok {
			continue
		}
		if _, seen := guests[h]; !seen {
			hours = append(hours, h)
		}
		guests[h] += r.PartySize
	}

	sort.SliceStable(hours, func(i, j int) bool {
		return guests[hours[i]] > guests[hours[j]]
	})
	if len(hours) > 3 {
		hours = hours[:3]
	}

	out := make([]PeakHour, 0, len(hours))
	for _, h := range hours {
		out = append(out, PeakHour{Hour: fmt.Sprintf("%d:00", h), Guests: guests[h]})
	}
	return out
}

// AverageDiningMinutes averages, over the tables currently holding
// guests, the whole minutes since each was seated. Rounded to the
// nearest minute; 0 when nothing is occupied.
func AverageDiningMinutes(tables []models.Table, now time.Time) int {
	total, n := 0, 0
	for _, t := range tables {
		if t.OccupiedSince == nil {
			continue
		}
		total += int(now.Sub(*t.OccupiedSince) / time.Minute)
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(n)))
}

// OccupancyRate is occupied tables over all tables, as a rounded
// percentage.
func OccupancyRate(tables []models.Table) int {
	if len(tables) == 0 {
		return 0
	}
	occupied := 0
	for _, t := range tables {
		if t.Status == models.TableOccupied {
			occupied++
		}
	}
	return int(math.Round(100 * float64(occupied) / float64(len(tables))))
}

// CountReservationStatuses tallies reservations per lifecycle status.
func CountReservationStatuses(reservations []models.Reservation) map[string]int {
	counts := make(map[string]int)
	for _, r := range reservations {
		counts[r.Status]++
	}
	return counts
}

func reservationHour(r models.Reservation) (int, bool) {
	h, err := strconv.Atoi(strings.SplitN(r.Time, ":", 2)[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}
