package models

import "time"

const (
	AssignmentRoleCoach  = "coach"
	AssignmentRoleDriver = "driver"
)

// BookingAssignment links a staff member to a booking as coach or driver.
// The same member may carry both roles on one booking (two rows).
type BookingAssignment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"index" json:"booking_id"`

	StaffID uint `json:"staff_id"`
	Staff   User `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	Role string `gorm:"size:10;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
