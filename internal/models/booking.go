package models

import "time"

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	PublicRef string `gorm:"size:36;uniqueIndex" json:"public_ref"`

	BoatID uint `json:"boat_id"`
	Boat   Boat `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"boat"`

	StartTime   time.Time `json:"start_time"`
	DurationMin int       `json:"duration_min"`
	// EndTime is denormalized from StartTime + DurationMin for range queries.
	EndTime time.Time `json:"end_time"`

	ContactName   string `gorm:"size:100" json:"contact_name"`
	Notes         string `gorm:"size:255" json:"notes"`
	ScheduleNotes string `gorm:"size:255" json:"schedule_notes"`

	IsCoachPractice bool `gorm:"default:false" json:"is_coach_practice"`
	RequiresDriver  bool `gorm:"default:false" json:"requires_driver"`

	Status      string     `gorm:"size:20;default:'scheduled'" json:"status"`
	CancelledAt *time.Time `json:"cancelled_at"`

	Assignments []BookingAssignment `gorm:"constraint:OnDelete:CASCADE;" json:"assignments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
