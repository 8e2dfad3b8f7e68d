package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	reportDomain "github.com/harborbay/boathouse-scheduler/internal/domain/report"
	"github.com/harborbay/boathouse-scheduler/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *ReportGormRepository) GetBookingWithBoat(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Boat").
		First(&b, bookingID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Assignments
// --------------------------------------------------

func (r *ReportGormRepository) ListAssignments(
	ctx context.Context,
	bookingID uint,
) ([]models.BookingAssignment, error) {

	var assignments []models.BookingAssignment
	if err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("booking_id = ?", bookingID).
		Order("id ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// --------------------------------------------------
// Participants
// --------------------------------------------------

func (r *ReportGormRepository) ListParticipants(
	ctx context.Context,
	bookingID uint,
) ([]models.Participant, error) {

	var rows []models.Participant
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportGormRepository) CreateParticipant(
	ctx context.Context,
	p *models.Participant,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ReportGormRepository) UpdateParticipant(
	ctx context.Context,
	p *models.Participant,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// --------------------------------------------------
// Driver reports
// --------------------------------------------------

func (r *ReportGormRepository) ListDriverReports(
	ctx context.Context,
	bookingID uint,
) ([]models.DriverReport, error) {

	var rows []models.DriverReport
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportGormRepository) UpsertDriverReport(
	ctx context.Context,
	report *models.DriverReport,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "booking_id"}, {Name: "staff_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"driver_duration_min", "updated_at"}),
		}).
		Create(report).Error
}

func (r *ReportGormRepository) DeleteDriverReport(
	ctx context.Context,
	bookingID uint,
	staffID uint,
) error {
	return r.db.WithContext(ctx).
		Where("booking_id = ? AND staff_id = ?", bookingID, staffID).
		Delete(&models.DriverReport{}).Error
}

// Compile-time check
var _ reportDomain.Repository = (*ReportGormRepository)(nil)
