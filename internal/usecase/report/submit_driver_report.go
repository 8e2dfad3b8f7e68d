package report

import (
	"context"
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/audit"
	"github.com/harborbay/boathouse-scheduler/internal/cache"
	domain "github.com/harborbay/boathouse-scheduler/internal/domain/report"
	"github.com/harborbay/boathouse-scheduler/internal/domain/schedule"
	"github.com/harborbay/boathouse-scheduler/internal/events"
	"github.com/harborbay/boathouse-scheduler/internal/httperr"
	"github.com/harborbay/boathouse-scheduler/internal/models"
	"github.com/harborbay/boathouse-scheduler/internal/queue"
)

type SubmitDriverReportInput struct {
	BookingID         uint
	StaffID           uint
	DriverDurationMin int
}

type SubmitDriverReport struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	publisher *queue.Publisher
	cache     *cache.ScheduleCache
	loc       *time.Location
}

func NewSubmitDriverReport(
	repo domain.Repository,
	audit *audit.Dispatcher,
	publisher *queue.Publisher,
	cache *cache.ScheduleCache,
	loc *time.Location,
) *SubmitDriverReport {
	return &SubmitDriverReport{
		repo:      repo,
		audit:     audit,
		publisher: publisher,
		cache:     cache,
		loc:       loc,
	}
}

func (uc *SubmitDriverReport) Execute(
	ctx context.Context,
	in SubmitDriverReportInput,
) error {

	b, err := uc.repo.GetBookingWithBoat(ctx, in.BookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	assignments, err := uc.repo.ListAssignments(ctx, in.BookingID)
	if err != nil {
		return err
	}
	assignments = schedule.SanitizeAssignments(assignments)

	coaches, drivers := domain.SplitAssignments(assignments)
	coachIDs := domain.IDs(coaches)
	driverIDs := domain.IDs(drivers)

	role := domain.Classify(coachIDs, driverIDs, in.StaffID, b.Boat.IsFacility)
	if !role.IncludesDriver() {
		return httperr.ErrBusiness("not_a_driver")
	}

	// Zero is a valid driven duration; presence of the row is what
	// marks the report filed.
	if in.DriverDurationMin < 0 {
		return httperr.ErrBusiness("invalid_duration")
	}

	if err := uc.repo.UpsertDriverReport(ctx, &models.DriverReport{
		BookingID:         in.BookingID,
		StaffID:           in.StaffID,
		DriverDurationMin: in.DriverDurationMin,
	}); err != nil {
		return err
	}

	// Every submission also sweeps reports that no longer match the
	// current classification.
	reports, err := uc.repo.ListDriverReports(ctx, in.BookingID)
	if err != nil {
		return err
	}
	for i := range reports {
		r := &reports[i]
		if domain.Classify(coachIDs, driverIDs, r.StaffID, b.Boat.IsFacility).IncludesDriver() {
			continue
		}
		if err := uc.repo.DeleteDriverReport(ctx, in.BookingID, r.StaffID); err != nil {
			return err
		}
	}

	uc.cache.InvalidateDay(ctx, b.StartTime.In(uc.loc).Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.StaffID,
		Action:   "driver_report_submitted",
		Entity:   "booking",
		EntityID: &in.BookingID,
	})

	uc.publisher.Publish(ctx, events.QueueReportSubmitted, events.ReportSubmittedEvent{
		BookingID: in.BookingID,
		StaffID:   in.StaffID,
		Kind:      "driver",
	})

	return nil
}
