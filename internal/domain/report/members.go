package report

import "github.com/harborbay/boathouse-scheduler/internal/models"

// StaffRef is a (id, name) pair extracted from assignment rows.
type StaffRef struct {
	ID   uint
	Name string
}

// SplitAssignments separates a booking's assignment rows into its coach
// and driver lists, preserving row order.
func SplitAssignments(assignments []models.BookingAssignment) (coaches, drivers []StaffRef) {
	for i := range assignments {
		a := &assignments[i]
		ref := StaffRef{ID: a.StaffID, Name: a.Staff.Name}
		switch a.Role {
		case models.AssignmentRoleCoach:
			coaches = append(coaches, ref)
		case models.AssignmentRoleDriver:
			drivers = append(drivers, ref)
		}
	}
	return coaches, drivers
}

// Members returns the distinct staff with any assignment on the
// booking, coaches first, in order of appearance.
func Members(coaches, drivers []StaffRef) []StaffRef {
	seen := make(map[uint]bool, len(coaches)+len(drivers))
	out := make([]StaffRef, 0, len(coaches)+len(drivers))
	for _, ref := range append(append([]StaffRef{}, coaches...), drivers...) {
		if seen[ref.ID] {
			continue
		}
		seen[ref.ID] = true
		out = append(out, ref)
	}
	return out
}

// IDs projects a staff list to its ids.
func IDs(refs []StaffRef) []uint {
	ids := make([]uint, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids
}
