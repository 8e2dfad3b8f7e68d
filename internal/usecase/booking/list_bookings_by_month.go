package booking

import (
	"context"
	"time"

	domain "github.com/harborbay/boathouse-scheduler/internal/domain/booking"
	"github.com/harborbay/boathouse-scheduler/internal/dto"
)

type ListBookingsByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListBookingsByMonth(
	repo domain.Repository,
	loc *time.Location,
) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

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
