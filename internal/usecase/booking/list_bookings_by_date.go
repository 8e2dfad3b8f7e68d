package booking

import (
	"context"
	"time"

	domain "github.com/harborbay/boathouse-scheduler/internal/domain/booking"
	"github.com/harborbay/boathouse-scheduler/internal/dto"
)

type ListBookingsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListBookingsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		uc.loc,
	)
	end := start.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:              b.ID,
			PublicRef:       b.PublicRef,
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			DurationMin:     b.DurationMin,
			Status:          b.Status,
			BoatName:        b.Boat.Name,
			ContactName:     b.ContactName,
			IsCoachPractice: b.IsCoachPractice,
			RequiresDriver:  b.RequiresDriver,
		})
	}

	return out, nil
}
