package stats

import (
	"sort"

	"github.com/harborbay/boathouse-scheduler/internal/models"
)

// Usage is one line of a ranked summary: how many bookings a staff
// member or boat appeared on and the minutes involved.
type Usage struct {
	Name         string `json:"name"`
	Count        int    `json:"count"`
	TotalMinutes int    `json:"total_minutes"`
}

// DailySummary folds a day's bookings for the overview dashboard.
type DailySummary struct {
	TotalBookings int     `json:"total_bookings"`
	Coaches       []Usage `json:"coaches"`
	Drivers       []Usage `json:"drivers"`
	Boats         []Usage `json:"boats"`
}

// Summarize aggregates bookings, their assignments and the boat list.
// Driver usage excludes facility boats entirely: no driving happens
// there even if an assignment row exists. Rankings are descending by
// count; ties keep discovery order.
func Summarize(
	bookings []models.Booking,
	assignments []models.BookingAssignment,
	boats []models.Boat,
) DailySummary {

	boatsByID := make(map[uint]*models.Boat, len(boats))
	for i := range boats {
		boatsByID[boats[i].ID] = &boats[i]
	}

	byBooking := make(map[uint][]models.BookingAssignment, len(bookings))
	for _, a := range assignments {
		byBooking[a.BookingID] = append(byBooking[a.BookingID], a)
	}

	coaches := newFold()
	drivers := newFold()
	boatUse := newFold()

	summary := DailySummary{}

	for i := range bookings {
		b := &bookings[i]
		summary.TotalBookings++

		boat := boatsByID[b.BoatID]
		if boat != nil {
			boatUse.add(boat.Name, b.DurationMin)
		}

		for _, a := range byBooking[b.ID] {
			switch a.Role {
			case models.AssignmentRoleCoach:
				coaches.add(a.Staff.Name, b.DurationMin)
			case models.AssignmentRoleDriver:
				if boat != nil && boat.IsFacility {
					continue
				}
				drivers.add(a.Staff.Name, b.DurationMin)
			}
		}
	}

	summary.Coaches = coaches.ranked()
	summary.Drivers = drivers.ranked()
	summary.Boats = boatUse.ranked()
	return summary
}

// fold accumulates usage keyed by name, remembering discovery order so
// ties rank deterministically.
type fold struct {
	order  []string
	byName map[string]*Usage
}

func newFold() *fold {
	return &fold{byName: make(map[string]*Usage)}
}

func (f *fold) add(name string, minutes int) {
	if name == "" {
		return
	}
	u, ok := f.byName[name]
	if !ok {
		u = &Usage{Name: name}
		f.byName[name] = u
		f.order = append(f.order, name)
	}
	u.Count++
	u.TotalMinutes += minutes
}

func (f *fold) ranked() []Usage {
	out := make([]Usage, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, *f.byName[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
