package dto

// Cell status values for the day grid.
const (
	CellEmpty    = "empty"
	CellOccupied = "occupied"
	CellCleanup  = "cleanup"
)

type ScheduleCellDTO struct {
	Slot        string `json:"slot"`
	Status      string `json:"status"`
	BookingID   *uint  `json:"booking_id,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
	IsStart     bool   `json:"is_start,omitempty"`
}

type ScheduleBoatDTO struct {
	ID         uint              `json:"id"`
	Name       string            `json:"name"`
	Color      string            `json:"color"`
	IsFacility bool              `json:"is_facility"`
	Cells      []ScheduleCellDTO `json:"cells"`
}

type DayScheduleDTO struct {
	Date  string            `json:"date"`
	Slots []string          `json:"slots"`
	Boats []ScheduleBoatDTO `json:"boats"`
}
