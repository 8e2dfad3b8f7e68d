package booking

import (
	"context"
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/audit"
	"github.com/harborbay/boathouse-scheduler/internal/cache"
	domain "github.com/harborbay/boathouse-scheduler/internal/domain/booking"
	"github.com/harborbay/boathouse-scheduler/internal/events"
	"github.com/harborbay/boathouse-scheduler/internal/models"
	"github.com/harborbay/boathouse-scheduler/internal/queue"
)

type CancelBooking struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	publisher *queue.Publisher
	cache     *cache.ScheduleCache
	loc       *time.Location
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	publisher *queue.Publisher,
	cache *cache.ScheduleCache,
	loc *time.Location,
) *CancelBooking {
	return &CancelBooking{
		repo:      repo,
		audit:     audit,
		publisher: publisher,
		cache:     cache,
		loc:       loc,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	staffID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(uc.loc)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, b.StartTime.In(uc.loc).Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.publisher.Publish(ctx, events.QueueBookingCancelled, events.BookingCancelledEvent{
		BookingID:   b.ID,
		PublicRef:   b.PublicRef,
		CancelledBy: staffID,
		CancelledAt: now.Format(time.RFC3339),
	})

	return b, nil
}
