package schedule

import (
	"context"
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/cache"
	domain "github.com/harborbay/boathouse-scheduler/internal/domain/schedule"
	"github.com/harborbay/boathouse-scheduler/internal/dto"
)

type GetDaySchedule struct {
	repo  domain.Repository
	cache *cache.ScheduleCache
	loc   *time.Location
}

func NewGetDaySchedule(
	repo domain.Repository,
	cache *cache.ScheduleCache,
	loc *time.Location,
) *GetDaySchedule {
	return &GetDaySchedule{
		repo:  repo,
		cache: cache,
		loc:   loc,
	}
}

// Execute assembles the day grid: every visible 15-minute slot and, for
// each boat, the cell state per slot (occupied, cleanup or empty).
func (uc *GetDaySchedule) Execute(
	ctx context.Context,
	date time.Time,
) (*dto.DayScheduleDTO, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)
	dayEnd := dayStart.Add(24 * time.Hour)
	dayKey := dayStart.Format("2006-01-02")

	var cached dto.DayScheduleDTO
	if uc.cache.GetDay(ctx, dayKey, &cached) {
		return &cached, nil
	}

	boats, err := uc.repo.ListBoats(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	boats = domain.SanitizeBoats(boats)
	bookings = domain.SanitizeBookings(bookings)

	occ := domain.BuildOccupancy(bookings, boats, dayStart)
	slots := domain.VisibleRange(bookings, boats, dayStart)

	out := &dto.DayScheduleDTO{
		Date:  dayKey,
		Slots: slots,
		Boats: make([]dto.ScheduleBoatDTO, 0, len(boats)),
	}

	referenced := make(map[uint]bool, len(bookings))
	for i := range bookings {
		referenced[bookings[i].BoatID] = true
	}

	for i := range boats {
		boat := &boats[i]

		// Inactive boats stay visible while historical bookings
		// still reference them.
		if !boat.Active && !referenced[boat.ID] {
			continue
		}

		row := dto.ScheduleBoatDTO{
			ID:         boat.ID,
			Name:       boat.Name,
			Color:      boat.Color,
			IsFacility: boat.IsFacility,
			Cells:      make([]dto.ScheduleCellDTO, 0, len(slots)),
		}

		for _, slot := range slots {
			cell := dto.ScheduleCellDTO{Slot: slot, Status: dto.CellEmpty}

			if b := occ.OccupantOf(boat.ID, slot); b != nil {
				cell.Status = dto.CellOccupied
				cell.BookingID = &b.ID
				cell.ContactName = b.ContactName
				cell.IsStart = occ.IsSlotStart(boat.ID, slot)
			} else if occ.IsCleanup(boat.ID, slot) {
				cell.Status = dto.CellCleanup
			}

			row.Cells = append(row.Cells, cell)
		}

		out.Boats = append(out.Boats, row)
	}

	uc.cache.SetDay(ctx, dayKey, out)
	return out, nil
}
