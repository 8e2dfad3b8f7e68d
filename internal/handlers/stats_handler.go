package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harborbay/boathouse-scheduler/internal/httperr"
	ucStats "github.com/harborbay/boathouse-scheduler/internal/usecase/stats"
)

type StatsHandler struct {
	loc          *time.Location
	dailyStatsUC *ucStats.GetDailyStats
}

func NewStatsHandler(
	loc *time.Location,
	dailyStatsUC *ucStats.GetDailyStats,
) *StatsHandler {
	return &StatsHandler{
		loc:          loc,
		dailyStatsUC: dailyStatsUC,
	}
}

func (h *StatsHandler) GetDaily(c *gin.Context) {
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

	out, err := h.dailyStatsUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "stats_failed", "Failed to compute daily stats.")
		return
	}

	c.JSON(200, out)
}
