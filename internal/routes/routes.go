package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harborbay/boathouse-scheduler/internal/audit"
	"github.com/harborbay/boathouse-scheduler/internal/cache"
	"github.com/harborbay/boathouse-scheduler/internal/config"
	"github.com/harborbay/boathouse-scheduler/internal/handlers"
	infraRepo "github.com/harborbay/boathouse-scheduler/internal/infra/repository"
	"github.com/harborbay/boathouse-scheduler/internal/middleware"
	"github.com/harborbay/boathouse-scheduler/internal/queue"
	"github.com/harborbay/boathouse-scheduler/internal/timezone"
	ucBooking "github.com/harborbay/boathouse-scheduler/internal/usecase/booking"
	ucReport "github.com/harborbay/boathouse-scheduler/internal/usecase/report"
	ucSchedule "github.com/harborbay/boathouse-scheduler/internal/usecase/schedule"
	ucStats "github.com/harborbay/boathouse-scheduler/internal/usecase/stats"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)

	bookingRepo := infraRepo.NewBookingGormRepository(db)
	reportRepo := infraRepo.NewReportGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	scheduleCache := cache.NewScheduleCache(cache.NewRedisClient(cfg), 30*time.Second)
	publisher := queue.NewPublisher(cfg.AMQPUrl)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		publisher,
		scheduleCache,
		loc,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		publisher,
		scheduleCache,
		loc,
	)

	listBookingsByDateUC := ucBooking.NewListBookingsByDate(bookingRepo, loc)
	listBookingsByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo, loc)

	dayScheduleUC := ucSchedule.NewGetDaySchedule(bookingRepo, scheduleCache, loc)

	bookingRolesUC := ucReport.NewListBookingRoles(reportRepo)
	submitCoachReportUC := ucReport.NewSubmitCoachReport(
		reportRepo,
		auditDispatcher,
		publisher,
		scheduleCache,
		loc,
	)
	submitDriverReportUC := ucReport.NewSubmitDriverReport(
		reportRepo,
		auditDispatcher,
		publisher,
		scheduleCache,
		loc,
	)

	dailyStatsUC := ucStats.NewGetDailyStats(bookingRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	boatHandler := handlers.NewBoatHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		scheduleCache,
		loc,
		createBookingUC,
		cancelBookingUC,
		listBookingsByDateUC,
		listBookingsByMonthUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(loc, dayScheduleUC)
	reportHandler := handlers.NewReportHandler(
		bookingRolesUC,
		submitCoachReportUC,
		submitDriverReportUC,
	)
	statsHandler := handlers.NewStatsHandler(loc, dailyStatsUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// BOATS
			// ------------------------------
			secured.GET("/boats", boatHandler.List)

			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/boats", boatHandler.Create)
				admin.PATCH("/boats/:id", boatHandler.Update)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListByDate)
			secured.GET("/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.POST("/bookings/:id/assignments", bookingHandler.AssignStaff)
			secured.DELETE("/bookings/:id/assignments/:assignmentId", bookingHandler.UnassignStaff)

			// ------------------------------
			// SCHEDULE GRID
			// ------------------------------
			secured.GET("/schedule", scheduleHandler.GetDay)

			// ------------------------------
			// REPORTS
			// ------------------------------
			secured.GET("/bookings/:id/report-roles", reportHandler.GetBookingRoles)
			secured.POST("/bookings/:id/coach-report", reportHandler.SubmitCoachReport)
			secured.POST("/bookings/:id/driver-report", reportHandler.SubmitDriverReport)

			// ------------------------------
			// STATS
			// ------------------------------
			secured.GET("/stats/daily", statsHandler.GetDaily)
		}
	}
}
