package report

import (
	"context"

	"github.com/harborbay/boathouse-scheduler/internal/models"
)

type Repository interface {
	// -------- Booking --------
	GetBookingWithBoat(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	// -------- Assignments --------
	ListAssignments(
		ctx context.Context,
		bookingID uint,
	) ([]models.BookingAssignment, error)

	// -------- Participants --------
	ListParticipants(
		ctx context.Context,
		bookingID uint,
	) ([]models.Participant, error)

	CreateParticipant(
		ctx context.Context,
		p *models.Participant,
	) error

	UpdateParticipant(
		ctx context.Context,
		p *models.Participant,
	) error

	// -------- Driver reports --------
	ListDriverReports(
		ctx context.Context,
		bookingID uint,
	) ([]models.DriverReport, error)

	UpsertDriverReport(
		ctx context.Context,
		r *models.DriverReport,
	) error

	DeleteDriverReport(
		ctx context.Context,
		bookingID uint,
		staffID uint,
	) error
}
