package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookingDomain "github.com/harborbay/boathouse-scheduler/internal/domain/booking"
	scheduleDomain "github.com/harborbay/boathouse-scheduler/internal/domain/schedule"
	"github.com/harborbay/boathouse-scheduler/internal/httperr"
	"github.com/harborbay/boathouse-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Boat
// --------------------------------------------------

func (r *BookingGormRepository) GetBoatByID(
	ctx context.Context,
	id uint,
) (*models.Boat, error) {

	var boat models.Boat
	if err := r.db.WithContext(ctx).First(&boat, id).Error; err != nil {
		return nil, err
	}
	return &boat, nil
}

func (r *BookingGormRepository) ListBoats(
	ctx context.Context,
) ([]models.Boat, error) {

	var boats []models.Boat
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&boats).Error; err != nil {
		return nil, err
	}
	return boats, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	boatID uint,
	from time.Time,
	to time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"boat_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
			boatID,
			to,
			from,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, bookingID).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listing (grid, lists, stats)
// --------------------------------------------------

// Cancelled bookings never occupy the grid, so period listings only
// return scheduled rows.
func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Boat").
		Where(
			"status = 'scheduled' AND start_time >= ? AND start_time < ?",
			start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListAssignmentsForBookings(
	ctx context.Context,
	bookingIDs []uint,
) ([]models.BookingAssignment, error) {

	if len(bookingIDs) == 0 {
		return []models.BookingAssignment{}, nil
	}

	var assignments []models.BookingAssignment
	if err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("booking_id IN ?", bookingIDs).
		Order("id ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

// Compile-time checks
var (
	_ bookingDomain.Repository  = (*BookingGormRepository)(nil)
	_ scheduleDomain.Repository = (*BookingGormRepository)(nil)
)
