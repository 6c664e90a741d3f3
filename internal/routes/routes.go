package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bookwise-app/bookwise-server/internal/audit"
	"github.com/bookwise-app/bookwise-server/internal/cache"
	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
	"github.com/bookwise-app/bookwise-server/internal/handlers"
	infraRepo "github.com/bookwise-app/bookwise-server/internal/infra/repository"
	"github.com/bookwise-app/bookwise-server/internal/media"
	"github.com/bookwise-app/bookwise-server/internal/middleware"
	"github.com/bookwise-app/bookwise-server/internal/reminder"
	ucScheduling "github.com/bookwise-app/bookwise-server/internal/usecase/scheduling"
)

// Deps carries everything the route tree needs. Optional pieces (cache,
// drafter, media) may be nil; the affected endpoints degrade gracefully.
type Deps struct {
	DB        *gorm.DB
	Scheduler *schedule.Scheduler
	Cache     *cache.Availability
	Drafter   reminder.Drafter
	Media     *media.Store
	Log       *zap.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(deps.DB)

	auditLogger := audit.New(deps.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, deps.Log)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	bookUC := ucScheduling.NewBookAppointment(
		schedulingRepo,
		deps.Scheduler,
		deps.Cache,
		auditDispatcher,
	)

	updateUC := ucScheduling.NewUpdateAppointment(
		schedulingRepo,
		deps.Scheduler,
		deps.Cache,
		auditDispatcher,
	)

	cancelUC := ucScheduling.NewCancelAppointment(
		schedulingRepo,
		deps.Cache,
		auditDispatcher,
	)

	availabilityUC := ucScheduling.NewGetAvailability(
		schedulingRepo,
		deps.Scheduler,
		deps.Cache,
	)

	weekUC := ucScheduling.NewGetWeek(schedulingRepo, deps.Scheduler)

	blockSlotUC := ucScheduling.NewBlockSlot(
		schedulingRepo,
		deps.Scheduler,
		deps.Cache,
		auditDispatcher,
	)

	blockDayUC := ucScheduling.NewBlockDay(
		schedulingRepo,
		deps.Scheduler,
		deps.Cache,
		auditDispatcher,
	)

	unblockDayUC := ucScheduling.NewUnblockDay(
		schedulingRepo,
		deps.Scheduler,
		deps.Cache,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		deps.DB,
		deps.Scheduler,
		bookUC,
		updateUC,
		cancelUC,
		availabilityUC,
	)

	calendarHandler := handlers.NewCalendarHandler(
		deps.Scheduler,
		weekUC,
		blockSlotUC,
		blockDayUC,
		unblockDayUC,
	)

	customerHandler := handlers.NewCustomerHandler(deps.DB, deps.Media, auditDispatcher)
	updateRequestHandler := handlers.NewUpdateRequestHandler(deps.DB, auditDispatcher)
	reminderHandler := handlers.NewReminderHandler(deps.DB, deps.Drafter, auditDispatcher)
	attachmentHandler := handlers.NewAttachmentHandler(deps.DB, deps.Media, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB, deps.Scheduler.Location())

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AVAILABILITY
		// ------------------------------
		api.GET("/availability", appointmentHandler.Availability)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.ListByDate)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Cancel)
		api.POST("/appointments/:id/attachments", attachmentHandler.Upload)
		api.POST("/appointments/:id/reminder", reminderHandler.DraftReminder)

		// ------------------------------
		// CALENDAR
		// ------------------------------
		api.GET("/calendar/week", calendarHandler.Week)
		api.POST("/calendar/block", calendarHandler.BlockSlot)
		api.POST("/calendar/block-day", calendarHandler.BlockDay)
		api.POST("/calendar/unblock-day", calendarHandler.UnblockDay)

		// ------------------------------
		// CUSTOMERS
		// ------------------------------
		api.GET("/customers", customerHandler.List)
		api.GET("/customers/:id", customerHandler.Get)
		api.POST("/customers/:id/profile-picture", customerHandler.UploadProfilePicture)
		api.POST("/customers/:id/follow-up", reminderHandler.DraftFollowUp)

		// ------------------------------
		// UPDATE REQUESTS
		// ------------------------------
		api.GET("/update-requests", updateRequestHandler.List)
		api.POST("/update-requests/:id/approve", updateRequestHandler.Approve)
		api.POST("/update-requests/:id/reject", updateRequestHandler.Reject)

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
