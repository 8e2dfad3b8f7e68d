package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harborbay/boathouse-scheduler/internal/cache"
	"github.com/harborbay/boathouse-scheduler/internal/httperr"
	"github.com/harborbay/boathouse-scheduler/internal/httpresp"
	"github.com/harborbay/boathouse-scheduler/internal/middleware"
	"github.com/harborbay/boathouse-scheduler/internal/models"
	ucBooking "github.com/harborbay/boathouse-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db    *gorm.DB
	cache *cache.ScheduleCache
	loc   *time.Location

	createUC      *ucBooking.CreateBooking
	cancelUC      *ucBooking.CancelBooking
	listByDateUC  *ucBooking.ListBookingsByDate
	listByMonthUC *ucBooking.ListBookingsByMonth
}

func NewBookingHandler(
	db *gorm.DB,
	cache *cache.ScheduleCache,
	loc *time.Location,
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	listByDateUC *ucBooking.ListBookingsByDate,
	listByMonthUC *ucBooking.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		db:            db,
		cache:         cache,
		loc:           loc,
		createUC:      createUC,
		cancelUC:      cancelUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BoatID          uint   `json:"boat_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMin     int    `json:"duration_min" binding:"required"`
	ContactName     string `json:"contact_name"`
	Notes           string `json:"notes"`
	ScheduleNotes   string `json:"schedule_notes"`
	IsCoachPractice bool   `json:"is_coach_practice"`
	RequiresDriver  bool   `json:"requires_driver"`
}

type AssignStaffRequest struct {
	StaffID uint   `json:"staff_id" binding:"required"`
	Role    string `json:"role" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		StaffID:         staffID,
		BoatID:          req.BoatID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMin:     req.DurationMin,
		ContactName:     req.ContactName,
		Notes:           req.Notes,
		ScheduleNotes:   req.ScheduleNotes,
		IsCoachPractice: req.IsCoachPractice,
		RequiresDriver:  req.RequiresDriver,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(201, b)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), uint(id), staffID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseDateIn(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "booking_list_failed", "Failed to list bookings.")
		return
	}

	httpresp.List(c, out)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "booking_list_failed", "Failed to list bookings.")
		return
	}

	c.JSON(200, gin.H{
		"year":     year,
		"month":    month,
		"bookings": out,
	})
}

// ======================================================
// ASSIGNMENTS
// ======================================================

func (h *BookingHandler) AssignStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid assignment payload.")
		return
	}

	if req.Role != models.AssignmentRoleCoach && req.Role != models.AssignmentRoleDriver {
		httperr.BadRequest(c, "invalid_role", "Role must be coach or driver.")
		return
	}

	var b models.Booking
	if err := h.db.First(&b, id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	var staff models.User
	if err := h.db.First(&staff, req.StaffID).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	var count int64
	h.db.Model(&models.BookingAssignment{}).
		Where("booking_id = ? AND staff_id = ? AND role = ?", b.ID, staff.ID, req.Role).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "already_assigned", "Staff already holds this role on the booking.")
		return
	}

	a := models.BookingAssignment{
		BookingID: b.ID,
		StaffID:   staff.ID,
		Role:      req.Role,
	}
	if err := h.db.Create(&a).Error; err != nil {
		httperr.Internal(c, "assignment_failed", "Failed to assign staff.")
		return
	}

	// Assignments change role classification, so the cached grid and
	// report buttons must be recomputed.
	h.cache.InvalidateDay(c.Request.Context(), b.StartTime.In(h.loc).Format("2006-01-02"))

	c.JSON(201, a)
}

func (h *BookingHandler) UnassignStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	assignmentID, err := strconv.ParseUint(c.Param("assignmentId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid assignment id.")
		return
	}

	var a models.BookingAssignment
	if err := h.db.
		Where("id = ? AND booking_id = ?", assignmentID, id).
		First(&a).Error; err != nil {
		httperr.NotFound(c, "assignment_not_found", "Assignment not found.")
		return
	}

	if err := h.db.Delete(&a).Error; err != nil {
		httperr.Internal(c, "unassign_failed", "Failed to remove assignment.")
		return
	}

	var b models.Booking
	if err := h.db.First(&b, id).Error; err == nil {
		h.cache.InvalidateDay(c.Request.Context(), b.StartTime.In(h.loc).Format("2006-01-02"))
	}

	c.Status(204)
}

// writeBusinessError maps business codes to 400s and everything else
// to a 500.
func writeBusinessError(c *gin.Context, err error) {
	if code, ok := httperr.AnyBusiness(err); ok {
		httperr.BadRequest(c, code, "Request rejected: "+code+".")
		return
	}
	httperr.Internal(c, "internal_error", "Unexpected error.")
}
