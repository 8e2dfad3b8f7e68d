package schedule

import (
	"context"
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/models"
)

type Repository interface {
	// -------- Boats --------
	ListBoats(
		ctx context.Context,
	) ([]models.Boat, error)

	// -------- Bookings --------
	ListBookingsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Assignments --------
	ListAssignmentsForBookings(
		ctx context.Context,
		bookingIDs []uint,
	) ([]models.BookingAssignment, error)
}
