package stats

import (
	"context"
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/domain/schedule"
	domain "github.com/harborbay/boathouse-scheduler/internal/domain/stats"
)

type GetDailyStats struct {
	repo schedule.Repository
	loc  *time.Location
}

func NewGetDailyStats(
	repo schedule.Repository,
	loc *time.Location,
) *GetDailyStats {
	return &GetDailyStats{
		repo: repo,
		loc:  loc,
	}
}

func (uc *GetDailyStats) Execute(
	ctx context.Context,
	date time.Time,
) (*domain.DailySummary, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)
	end := start.Add(24 * time.Hour)

	boats, err := uc.repo.ListBoats(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	bookings = schedule.SanitizeBookings(bookings)
	boats = schedule.SanitizeBoats(boats)

	ids := make([]uint, 0, len(bookings))
	for i := range bookings {
		ids = append(ids, bookings[i].ID)
	}

	assignments, err := uc.repo.ListAssignmentsForBookings(ctx, ids)
	if err != nil {
		return nil, err
	}
	assignments = schedule.SanitizeAssignments(assignments)

	summary := domain.Summarize(bookings, assignments, boats)
	return &summary, nil
}
