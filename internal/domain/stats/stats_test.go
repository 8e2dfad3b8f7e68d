package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/models"
)

func at(hour int) time.Time {
	return time.Date(2025, 6, 14, hour, 0, 0, 0, time.UTC)
}

func coach(bookingID uint, name string) models.BookingAssignment {
	return models.BookingAssignment{
		BookingID: bookingID,
		Role:      models.AssignmentRoleCoach,
		Staff:     models.User{Name: name},
	}
}

func driver(bookingID uint, name string) models.BookingAssignment {
	return models.BookingAssignment{
		BookingID: bookingID,
		Role:      models.AssignmentRoleDriver,
		Staff:     models.User{Name: name},
	}
}

func TestSummarizeCoachRanking(t *testing.T) {
	boats := []models.Boat{{ID: 1, Name: "Blue Speeder", Active: true}}
	bookings := []models.Booking{
		{ID: 1, BoatID: 1, StartTime: at(9), DurationMin: 60},
		{ID: 2, BoatID: 1, StartTime: at(11), DurationMin: 30},
		{ID: 3, BoatID: 1, StartTime: at(14), DurationMin: 30},
	}
	assignments := []models.BookingAssignment{
		coach(1, "Alice"),
		coach(2, "Alice"),
		coach(3, "Bob"),
	}

	s := Summarize(bookings, assignments, boats)

	if s.TotalBookings != 3 {
		t.Errorf("TotalBookings = %d, want 3", s.TotalBookings)
	}

	want := []Usage{
		{Name: "Alice", Count: 2, TotalMinutes: 90},
		{Name: "Bob", Count: 1, TotalMinutes: 30},
	}
	if !reflect.DeepEqual(s.Coaches, want) {
		t.Errorf("Coaches = %+v, want %+v", s.Coaches, want)
	}
}

func TestSummarizeDriversSkipFacilityBoats(t *testing.T) {
	boats := []models.Boat{
		{ID: 1, Name: "Blue Speeder", Active: true},
		{ID: 2, Name: "彈簧床", IsFacility: true, Active: true},
	}
	bookings := []models.Booking{
		{ID: 1, BoatID: 1, StartTime: at(9), DurationMin: 60},
		{ID: 2, BoatID: 2, StartTime: at(11), DurationMin: 60},
	}
	assignments := []models.BookingAssignment{
		driver(1, "Carol"),
		driver(2, "Carol"),
	}

	s := Summarize(bookings, assignments, boats)

	want := []Usage{{Name: "Carol", Count: 1, TotalMinutes: 60}}
	if !reflect.DeepEqual(s.Drivers, want) {
		t.Errorf("Drivers = %+v, want %+v", s.Drivers, want)
	}
}

func TestSummarizeBoatUsage(t *testing.T) {
	boats := []models.Boat{
		{ID: 1, Name: "Blue Speeder", Active: true},
		{ID: 2, Name: "Wave Rider", Active: true},
	}
	bookings := []models.Booking{
		{ID: 1, BoatID: 2, StartTime: at(9), DurationMin: 45},
		{ID: 2, BoatID: 1, StartTime: at(11), DurationMin: 60},
		{ID: 3, BoatID: 2, StartTime: at(14), DurationMin: 30},
	}

	s := Summarize(bookings, nil, boats)

	want := []Usage{
		{Name: "Wave Rider", Count: 2, TotalMinutes: 75},
		{Name: "Blue Speeder", Count: 1, TotalMinutes: 60},
	}
	if !reflect.DeepEqual(s.Boats, want) {
		t.Errorf("Boats = %+v, want %+v", s.Boats, want)
	}
}

// Equal counts keep the order in which the names first appeared.
func TestSummarizeStableTies(t *testing.T) {
	boats := []models.Boat{{ID: 1, Name: "Blue Speeder", Active: true}}
	bookings := []models.Booking{
		{ID: 1, BoatID: 1, StartTime: at(9), DurationMin: 30},
		{ID: 2, BoatID: 1, StartTime: at(11), DurationMin: 30},
	}
	assignments := []models.BookingAssignment{
		coach(1, "Bob"),
		coach(2, "Alice"),
	}

	s := Summarize(bookings, assignments, boats)

	if len(s.Coaches) != 2 || s.Coaches[0].Name != "Bob" || s.Coaches[1].Name != "Alice" {
		t.Errorf("tie order not preserved: %+v", s.Coaches)
	}
}

func TestSummarizeEmptyDay(t *testing.T) {
	s := Summarize(nil, nil, nil)

	if s.TotalBookings != 0 {
		t.Errorf("TotalBookings = %d, want 0", s.TotalBookings)
	}
	if len(s.Coaches) != 0 || len(s.Drivers) != 0 || len(s.Boats) != 0 {
		t.Errorf("empty day produced rankings: %+v", s)
	}
}
