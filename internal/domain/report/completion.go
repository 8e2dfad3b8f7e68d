package report

import "github.com/harborbay/boathouse-scheduler/internal/models"

// Completion records which halves of a member's reporting obligation
// are already filed for one booking.
type Completion struct {
	HasCoachReport  bool `json:"has_coach_report"`
	HasDriverReport bool `json:"has_driver_report"`
}

// TrackCompletion derives Completion from the booking's existing report
// rows. The coach half is filed when at least one non-deleted
// participant row exists for the (booking, member) pair; the driver
// half when a driver-report row exists at all, regardless of its value.
func TrackCompletion(
	participants []models.Participant,
	driverReports []models.DriverReport,
	bookingID uint,
	memberID uint,
) Completion {

	var c Completion

	for i := range participants {
		p := &participants[i]
		if p.BookingID == bookingID && p.CoachID == memberID && !p.IsDeleted {
			c.HasCoachReport = true
			break
		}
	}

	for i := range driverReports {
		r := &driverReports[i]
		if r.BookingID == bookingID && r.StaffID == memberID {
			c.HasDriverReport = true
			break
		}
	}

	return c
}

// Fulfilled reports whether every half required by role is filed.
// RoleNone is trivially fulfilled.
func (c Completion) Fulfilled(role Role) bool {
	if role.IncludesCoach() && !c.HasCoachReport {
		return false
	}
	if role.IncludesDriver() && !c.HasDriverReport {
		return false
	}
	return true
}
