package schedule

import (
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/models"
)

type slotKey struct {
	BoatID uint
	Label  string
}

type cell struct {
	booking *models.Booking
	cleanup bool
}

// Occupancy answers, for a (boat, slot) pair, whether it is occupied by
// a booking, blocked by a cleanup buffer, or free. All queries are O(1)
// map lookups after a single O(n) build pass.
type Occupancy struct {
	cells map[slotKey]cell
}

// BuildOccupancy walks the day's bookings and marks every 15-minute
// tick of each occupied interval, then the boat's cleanup buffer ticks.
//
// When two bookings claim the same boat and tick, the later-processed
// booking wins. That is a documented tolerance for inconsistent data,
// input-order dependent; true overlap prevention happens at booking
// creation. A cleanup tick never overwrites an occupied one.
func BuildOccupancy(bookings []models.Booking, boats []models.Boat, date time.Time) *Occupancy {
	occ := &Occupancy{cells: make(map[slotKey]cell)}
	boatsByID := indexBoats(boats)

	for i := range bookings {
		b := &bookings[i]
		if !sameDate(b.StartTime, date) {
			continue
		}

		startMin := minuteOfDay(b.StartTime)
		endMin := startMin + b.DurationMin

		for m := startMin; m < endMin && m < 24*60; m += slotStepMin {
			occ.cells[slotKey{b.BoatID, slotLabel(m)}] = cell{booking: b}
		}

		buffer := BufferMinutes(boatsByID[b.BoatID])
		for m := endMin; m < endMin+buffer && m < 24*60; m += slotStepMin {
			k := slotKey{b.BoatID, slotLabel(m)}
			if existing, ok := occ.cells[k]; ok && existing.booking != nil {
				continue
			}
			occ.cells[k] = cell{cleanup: true}
		}
	}

	return occ
}

// OccupantOf returns the booking occupying the slot, or nil when the
// slot is free or in cleanup.
func (o *Occupancy) OccupantOf(boatID uint, slot string) *models.Booking {
	return o.cells[slotKey{boatID, slot}].booking
}

// IsCleanup reports whether the slot is blocked by a cleanup buffer.
func (o *Occupancy) IsCleanup(boatID uint, slot string) bool {
	return o.cells[slotKey{boatID, slot}].cleanup
}

// IsSlotStart reports whether the occupying booking starts exactly at
// this slot. The grid renderer uses it as the rowspan anchor for
// merged cells.
func (o *Occupancy) IsSlotStart(boatID uint, slot string) bool {
	b := o.cells[slotKey{boatID, slot}].booking
	return b != nil && b.StartTime.Format("15:04") == slot
}
