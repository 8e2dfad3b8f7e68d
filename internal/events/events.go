// Package events defines message payloads published to the broker.
package events

const (
	QueueBookingCreated   = "booking.created"
	QueueBookingCancelled = "booking.cancelled"
	QueueReportSubmitted  = "report.submitted"
)

// BookingCreatedEvent carries enough for downstream consumers (notify,
// analytics) to act without querying the primary database.
type BookingCreatedEvent struct {
	BookingID   uint   `json:"booking_id"`
	PublicRef   string `json:"public_ref"`
	BoatID      uint   `json:"boat_id"`
	BoatName    string `json:"boat_name"`
	StartsAt    string `json:"starts_at"`
	DurationMin int    `json:"duration_min"`
	ContactName string `json:"contact_name"`
	CreatedBy   uint   `json:"created_by"`
}

type BookingCancelledEvent struct {
	BookingID   uint   `json:"booking_id"`
	PublicRef   string `json:"public_ref"`
	CancelledBy uint   `json:"cancelled_by"`
	CancelledAt string `json:"cancelled_at"`
}

type ReportSubmittedEvent struct {
	BookingID uint   `json:"booking_id"`
	StaffID   uint   `json:"staff_id"`
	Kind      string `json:"kind"` // "coach" or "driver"
}
