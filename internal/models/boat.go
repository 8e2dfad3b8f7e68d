package models

import "time"

// 彈簧床 (trampoline) is the one legacy facility name; new facility
// boats rely on the IsFacility flag set at creation.
const LegacyFacilityName = "彈簧床"

type Boat struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Color string `gorm:"size:20" json:"color"`

	// Stationary attraction: no driver, no cleanup buffer.
	IsFacility bool `gorm:"default:false" json:"is_facility"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
