package booking

import (
	"context"
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/models"
)

type Repository interface {
	// -------- Boat --------
	GetBoatByID(
		ctx context.Context,
		id uint,
	) (*models.Boat, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// AssertNoTimeConflict fails with the business code "time_conflict"
	// when any scheduled booking on the boat intersects [from, to).
	// Callers widen the interval by the boat's cleanup buffer on both
	// sides so a booking can start exactly at buffer end but not
	// inside it.
	AssertNoTimeConflict(
		ctx context.Context,
		boatID uint,
		from time.Time,
		to time.Time,
	) error

	// -------- Booking (state change) --------
	GetBookingByID(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listing --------
	ListBookingsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
