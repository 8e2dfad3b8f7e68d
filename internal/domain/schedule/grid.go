package schedule

import (
	"fmt"
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/models"
)

const (
	slotStepMin = 15
	slotsPerDay = 24 * 60 / slotStepMin

	defaultMinHour = 5
	defaultMaxHour = 19
)

// AllSlots returns the fixed universe of 96 time-of-day labels at
// 15-minute granularity, 00:00 through 23:45, ascending.
func AllSlots() []string {
	slots := make([]string, 0, slotsPerDay)
	for m := 0; m < 24*60; m += slotStepMin {
		slots = append(slots, slotLabel(m))
	}
	return slots
}

// VisibleRange filters AllSlots down to the hour window that the day's
// bookings actually touch. The default window is 05:00–19:00; a booking
// starting earlier lowers the floor to its start hour, and a booking
// whose end plus cleanup buffer runs later raises the ceiling to
// ceil(end/60). Slots are kept while their hour is below maxHour+1.
func VisibleRange(bookings []models.Booking, boats []models.Boat, date time.Time) []string {
	minHour := defaultMinHour
	maxHour := defaultMaxHour

	boatsByID := indexBoats(boats)

	for i := range bookings {
		b := &bookings[i]
		if !sameDate(b.StartTime, date) {
			continue
		}

		if h := b.StartTime.Hour(); h < minHour {
			minHour = h
		}

		startMin := minuteOfDay(b.StartTime)
		endMin := startMin + b.DurationMin + BufferMinutes(boatsByID[b.BoatID])
		if endHour := (endMin + 59) / 60; endHour > maxHour {
			maxHour = endHour
		}
	}
	if maxHour > 23 {
		maxHour = 23
	}

	var slots []string
	for m := 0; m < 24*60; m += slotStepMin {
		h := m / 60
		if h >= minHour && h < maxHour+1 {
			slots = append(slots, slotLabel(m))
		}
	}
	return slots
}

func slotLabel(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func sameDate(t, date time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func indexBoats(boats []models.Boat) map[uint]*models.Boat {
	byID := make(map[uint]*models.Boat, len(boats))
	for i := range boats {
		byID[boats[i].ID] = &boats[i]
	}
	return byID
}
