package dto

type MemberReportStatusDTO struct {
	StaffID         uint   `json:"staff_id"`
	StaffName       string `json:"staff_name"`
	RequiredRole    string `json:"required_role"`
	HasCoachReport  bool   `json:"has_coach_report"`
	HasDriverReport bool   `json:"has_driver_report"`
	Complete        bool   `json:"complete"`
}

type BookingReportStatusDTO struct {
	BookingID uint                    `json:"booking_id"`
	Members   []MemberReportStatusDTO `json:"members"`
}
