package models

import "time"

// DriverReport records the minutes a staff member actually drove on a
// booking. Row presence alone marks the driver report as filed; zero
// minutes is a valid value.
type DriverReport struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"index:idx_driver_report_pair,unique" json:"booking_id"`
	StaffID   uint `gorm:"index:idx_driver_report_pair,unique" json:"staff_id"`

	DriverDurationMin int `json:"driver_duration_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
