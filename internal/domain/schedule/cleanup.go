package schedule

import "github.com/harborbay/boathouse-scheduler/internal/models"

// Motorized boats need time to return to dock and be prepared for the
// next booking. Stationary facilities can be reused immediately.
const cleanupBufferMin = 15

// BufferMinutes is the single source of truth for the inter-booking
// buffer rule. TimeGrid and the occupancy build both call it; the
// constant and the facility exemption live nowhere else.
func BufferMinutes(boat *models.Boat) int {
	if boat == nil || boat.IsFacility {
		return 0
	}
	return cleanupBufferMin
}
