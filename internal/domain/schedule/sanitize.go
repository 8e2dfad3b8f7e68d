package schedule

import (
	"log"

	"github.com/harborbay/boathouse-scheduler/internal/models"
)

// The sanitize pass runs once at the ingestion boundary so the grid,
// classifier and stats code can assume well-formed input. Malformed
// rows are logged and dropped, never raised: the schedule must stay
// renderable with partial data.

func SanitizeBookings(bookings []models.Booking) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID == 0 || b.BoatID == 0 {
			log.Printf("schedule: dropping booking with missing identity (id=%d boat=%d)", b.ID, b.BoatID)
			continue
		}
		if b.DurationMin <= 0 {
			log.Printf("schedule: dropping booking %d with non-positive duration %d", b.ID, b.DurationMin)
			continue
		}
		out = append(out, b)
	}
	return out
}

func SanitizeBoats(boats []models.Boat) []models.Boat {
	out := make([]models.Boat, 0, len(boats))
	for _, boat := range boats {
		if boat.ID == 0 || boat.Name == "" {
			log.Printf("schedule: dropping boat with missing id or name (id=%d)", boat.ID)
			continue
		}
		out = append(out, boat)
	}
	return out
}

func SanitizeAssignments(assignments []models.BookingAssignment) []models.BookingAssignment {
	out := make([]models.BookingAssignment, 0, len(assignments))
	for _, a := range assignments {
		if a.BookingID == 0 || a.StaffID == 0 || a.Staff.Name == "" {
			log.Printf("schedule: dropping assignment with missing booking, staff or name (booking=%d staff=%d)", a.BookingID, a.StaffID)
			continue
		}
		if a.Role != models.AssignmentRoleCoach && a.Role != models.AssignmentRoleDriver {
			log.Printf("schedule: dropping assignment with unknown role %q (booking=%d)", a.Role, a.BookingID)
			continue
		}
		out = append(out, a)
	}
	return out
}
