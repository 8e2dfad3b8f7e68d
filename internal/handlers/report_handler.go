package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harborbay/boathouse-scheduler/internal/httperr"
	"github.com/harborbay/boathouse-scheduler/internal/middleware"
	ucReport "github.com/harborbay/boathouse-scheduler/internal/usecase/report"
)

// ======================================================
// HANDLER
// ======================================================

type ReportHandler struct {
	rolesUC        *ucReport.ListBookingRoles
	coachReportUC  *ucReport.SubmitCoachReport
	driverReportUC *ucReport.SubmitDriverReport
}

func NewReportHandler(
	rolesUC *ucReport.ListBookingRoles,
	coachReportUC *ucReport.SubmitCoachReport,
	driverReportUC *ucReport.SubmitDriverReport,
) *ReportHandler {
	return &ReportHandler{
		rolesUC:        rolesUC,
		coachReportUC:  coachReportUC,
		driverReportUC: driverReportUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ParticipantRequest struct {
	MemberID      *uint  `json:"member_id"`
	Name          string `json:"name"`
	DurationMin   int    `json:"duration_min"`
	LessonType    string `json:"lesson_type"`
	PaymentMethod string `json:"payment_method"`
}

type SubmitCoachReportRequest struct {
	Participants []ParticipantRequest `json:"participants" binding:"required"`
}

type SubmitDriverReportRequest struct {
	DriverDurationMin *int `json:"driver_duration_min" binding:"required"`
}

// ======================================================
// ROLES / COMPLETION
// ======================================================

func (h *ReportHandler) GetBookingRoles(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	out, err := h.rolesUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, out)
}

// ======================================================
// SUBMISSIONS
// ======================================================

func (h *ReportHandler) SubmitCoachReport(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req SubmitCoachReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid report payload.")
		return
	}

	in := ucReport.SubmitCoachReportInput{
		BookingID: uint(id),
		CoachID:   staffID,
	}
	for _, p := range req.Participants {
		in.Participants = append(in.Participants, ucReport.ParticipantInput{
			MemberID:      p.MemberID,
			Name:          p.Name,
			DurationMin:   p.DurationMin,
			LessonType:    p.LessonType,
			PaymentMethod: p.PaymentMethod,
		})
	}

	if err := h.coachReportUC.Execute(c.Request.Context(), in); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Status(204)
}

func (h *ReportHandler) SubmitDriverReport(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req SubmitDriverReportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DriverDurationMin == nil {
		httperr.BadRequest(c, "invalid_request", "Invalid report payload.")
		return
	}

	if err := h.driverReportUC.Execute(c.Request.Context(), ucReport.SubmitDriverReportInput{
		BookingID:         uint(id),
		StaffID:           staffID,
		DriverDurationMin: *req.DriverDurationMin,
	}); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Status(204)
}
