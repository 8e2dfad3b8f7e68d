package report

import (
	"testing"

	"github.com/harborbay/boathouse-scheduler/internal/models"
)

func TestTrackCompletionCoachHalf(t *testing.T) {
	participants := []models.Participant{
		{ID: 1, BookingID: 7, CoachID: 1, ParticipantName: "Mia"},
	}

	c := TrackCompletion(participants, nil, 7, 1)
	if !c.HasCoachReport {
		t.Error("a live participant row files the coach half")
	}
	if c.HasDriverReport {
		t.Error("no driver report was filed")
	}

	c = TrackCompletion(participants, nil, 7, 2)
	if c.HasCoachReport {
		t.Error("another coach's rows must not count")
	}

	c = TrackCompletion(participants, nil, 8, 1)
	if c.HasCoachReport {
		t.Error("rows on another booking must not count")
	}
}

func TestTrackCompletionIgnoresDeletedRows(t *testing.T) {
	participants := []models.Participant{
		{ID: 1, BookingID: 7, CoachID: 1, ParticipantName: "Mia", IsDeleted: true},
	}

	c := TrackCompletion(participants, nil, 7, 1)
	if c.HasCoachReport {
		t.Error("superseded rows must not count as a filed report")
	}
}

func TestTrackCompletionDriverHalf(t *testing.T) {
	// Zero minutes is a legitimate report: the member drove nothing but
	// still accounted for the booking.
	reports := []models.DriverReport{
		{ID: 1, BookingID: 7, StaffID: 2, DriverDurationMin: 0},
	}

	c := TrackCompletion(nil, reports, 7, 2)
	if !c.HasDriverReport {
		t.Error("a zero-minute driver report still files the driver half")
	}

	c = TrackCompletion(nil, reports, 7, 3)
	if c.HasDriverReport {
		t.Error("another member's report must not count")
	}
}

func TestFulfilled(t *testing.T) {
	cases := []struct {
		name string
		c    Completion
		role Role
		want bool
	}{
		{"none is always fulfilled", Completion{}, RoleNone, true},
		{"coach missing", Completion{}, RoleCoach, false},
		{"coach filed", Completion{HasCoachReport: true}, RoleCoach, true},
		{"driver missing", Completion{HasCoachReport: true}, RoleDriver, false},
		{"driver filed", Completion{HasDriverReport: true}, RoleDriver, true},
		{"both, one half missing", Completion{HasCoachReport: true}, RoleBoth, false},
		{"both filed", Completion{HasCoachReport: true, HasDriverReport: true}, RoleBoth, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Fulfilled(tc.role); got != tc.want {
				t.Errorf("Fulfilled(%v) = %v, want %v", tc.role, got, tc.want)
			}
		})
	}
}
