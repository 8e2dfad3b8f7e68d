package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/harborbay/boathouse-scheduler/internal/audit"
	"github.com/harborbay/boathouse-scheduler/internal/cache"
	domain "github.com/harborbay/boathouse-scheduler/internal/domain/booking"
	"github.com/harborbay/boathouse-scheduler/internal/domain/schedule"
	"github.com/harborbay/boathouse-scheduler/internal/events"
	"github.com/harborbay/boathouse-scheduler/internal/httperr"
	"github.com/harborbay/boathouse-scheduler/internal/models"
	"github.com/harborbay/boathouse-scheduler/internal/queue"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	StaffID uint

	BoatID uint

	Date string
	Time string

	DurationMin int

	ContactName   string
	Notes         string
	ScheduleNotes string

	IsCoachPractice bool
	RequiresDriver  bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	publisher *queue.Publisher
	cache     *cache.ScheduleCache
	loc       *time.Location
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	publisher *queue.Publisher,
	cache *cache.ScheduleCache,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:      repo,
		audit:     audit,
		publisher: publisher,
		cache:     cache,
		loc:       loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if in.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	boat, err := uc.repo.GetBoatByID(ctx, in.BoatID)
	if err != nil {
		return nil, httperr.ErrBusiness("boat_not_found")
	}
	if !boat.Active {
		return nil, httperr.ErrBusiness("boat_inactive")
	}

	end := start.Add(time.Duration(in.DurationMin) * time.Minute)

	// Overlaps are rejected at write time. The interval is widened by
	// the boat's cleanup buffer on both sides, so a new booking may
	// start exactly when a previous buffer ends but not inside it.
	buffer := time.Duration(schedule.BufferMinutes(boat)) * time.Minute
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		boat.ID,
		start.Add(-buffer),
		end.Add(buffer),
	); err != nil {
		return nil, err
	}

	b := &models.Booking{
		PublicRef:       uuid.NewString(),
		BoatID:          boat.ID,
		StartTime:       start,
		DurationMin:     in.DurationMin,
		EndTime:         end,
		ContactName:     in.ContactName,
		Notes:           in.Notes,
		ScheduleNotes:   in.ScheduleNotes,
		IsCoachPractice: in.IsCoachPractice,
		RequiresDriver:  in.RequiresDriver,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, start.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.StaffID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.publisher.Publish(ctx, events.QueueBookingCreated, events.BookingCreatedEvent{
		BookingID:   b.ID,
		PublicRef:   b.PublicRef,
		BoatID:      boat.ID,
		BoatName:    boat.Name,
		StartsAt:    start.Format(time.RFC3339),
		DurationMin: b.DurationMin,
		ContactName: b.ContactName,
		CreatedBy:   in.StaffID,
	})

	return b, nil
}
