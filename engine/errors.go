package engine

import "errors"

var (
	// ErrValidation wraps every reject caused by bad or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrSlotTaken means the target table already has an active
	// reservation for the requested date and time.
	ErrSlotTaken = errors.New("table is already booked for the selected time")

	// ErrTableNotAvailable rejects walk-in seating on a table that is
	// not currently free.
	ErrTableNotAvailable = errors.New("table is not available for seating")

	// ErrUnsupportedTransition rejects a manual status change the floor
	// state machine does not allow. No state is touched.
	ErrUnsupportedTransition = errors.New("unsupported table status transition")

	ErrTableNotFound       = errors.New("table not found")
	ErrReservationNotFound = errors.New("reservation not found")
)
