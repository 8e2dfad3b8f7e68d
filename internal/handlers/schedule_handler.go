package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harborbay/boathouse-scheduler/internal/httperr"
	ucSchedule "github.com/harborbay/boathouse-scheduler/internal/usecase/schedule"
)

type ScheduleHandler struct {
	loc           *time.Location
	dayScheduleUC *ucSchedule.GetDaySchedule
}

func NewScheduleHandler(
	loc *time.Location,
	dayScheduleUC *ucSchedule.GetDaySchedule,
) *ScheduleHandler {
	return &ScheduleHandler{
		loc:           loc,
		dayScheduleUC: dayScheduleUC,
	}
}

func (h *ScheduleHandler) GetDay(c *gin.Context) {
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

	out, err := h.dayScheduleUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "schedule_failed", "Failed to build the day schedule.")
		return
	}

	c.JSON(200, out)
}
