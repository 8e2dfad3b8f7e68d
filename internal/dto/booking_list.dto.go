package dto

import "time"

type BookingListDTO struct {
	ID              uint      `json:"id"`
	PublicRef       string    `json:"public_ref"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMin     int       `json:"duration_min"`
	Status          string    `json:"status"`
	BoatName        string    `json:"boat_name"`
	ContactName     string    `json:"contact_name"`
	IsCoachPractice bool      `json:"is_coach_practice"`
	RequiresDriver  bool      `json:"requires_driver"`
}
