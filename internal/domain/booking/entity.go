package booking

import (
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// End returns the exclusive end of the occupied interval.
func End(b *models.Booking) time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMin) * time.Minute)
}
