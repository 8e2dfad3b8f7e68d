package models

import "time"

const (
	LessonTypeUndesignated   = "undesignated"
	LessonTypeDesignatedPaid = "designated_paid"
	LessonTypeDesignatedFree = "designated_free"
)

// Participant is one taught person on a coach's session report.
// Resubmission never updates rows in place: the old row is marked deleted
// and the new row points back at it through ReplacesID, keeping the full
// audit chain.
type Participant struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"index" json:"booking_id"`
	CoachID   uint `gorm:"index" json:"coach_id"`

	MemberID        *uint  `json:"member_id"`
	ParticipantName string `gorm:"size:100;not null" json:"participant_name"`

	DurationMin   int    `json:"duration_min"`
	LessonType    string `gorm:"size:20;default:'undesignated'" json:"lesson_type"`
	PaymentMethod string `gorm:"size:20" json:"payment_method"`

	IsDeleted bool `gorm:"default:false" json:"is_deleted"`

	ReplacesID   *uint `json:"replaces_id"`
	ReplacedByID *uint `json:"replaced_by_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
