package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
	"github.com/bookwise-app/bookwise-server/internal/httperr"
	"github.com/bookwise-app/bookwise-server/internal/httpresp"
	"github.com/bookwise-app/bookwise-server/internal/models"
	"github.com/bookwise-app/bookwise-server/internal/usecase/scheduling"
	"github.com/bookwise-app/bookwise-server/internal/validators"
)

const dateLayout = "2006-01-02"

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db     *gorm.DB
	sched  *schedule.Scheduler
	book   *scheduling.BookAppointment
	update *scheduling.UpdateAppointment
	cancel *scheduling.CancelAppointment
	avail  *scheduling.GetAvailability
}

func NewAppointmentHandler(
	db *gorm.DB,
	sched *schedule.Scheduler,
	book *scheduling.BookAppointment,
	update *scheduling.UpdateAppointment,
	cancel *scheduling.CancelAppointment,
	avail *scheduling.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:     db,
		sched:  sched,
		book:   book,
		update: update,
		cancel: cancel,
		avail:  avail,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Notes        string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Notes        string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Email != "" && !validators.IsEmailFormatValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	created, err := h.book.Execute(c.Request.Context(), scheduling.BookAppointmentInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(c, err, "failed_to_book", "Failed to book the appointment.")
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), scheduling.UpdateAppointmentInput{
		ID:           id,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(c, err, "failed_to_update", "Failed to update the appointment.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	cancelled, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed_to_cancel", "Failed to cancel the appointment.")
		return
	}

	httpresp.OK(c, cancelled)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	day, err := time.ParseInLocation(dateLayout, dateStr, h.sched.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	start, end := h.sched.DayBounds(day)

	var appointments []models.Appointment
	if err := h.db.
		Preload("Attachments").
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Failed to list appointments.")
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	day, err := time.ParseInLocation(dateLayout, dateStr, h.sched.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.avail.Execute(c.Request.Context(), day, c.Query("exclude_id"))
	if err != nil {
		httperr.Internal(c, "failed_to_load_availability", "Failed to load availability.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
