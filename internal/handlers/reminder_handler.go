package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookwise-app/bookwise-server/internal/audit"
	"github.com/bookwise-app/bookwise-server/internal/httperr"
	"github.com/bookwise-app/bookwise-server/internal/httpresp"
	"github.com/bookwise-app/bookwise-server/internal/models"
	"github.com/bookwise-app/bookwise-server/internal/reminder"
)

// Reminders fire 48 hours before the appointment.
const reminderLeadTime = 48 * time.Hour

// ======================================================
// HANDLER
// ======================================================

type ReminderHandler struct {
	db      *gorm.DB
	drafter reminder.Drafter
	audit   *audit.Dispatcher
}

func NewReminderHandler(db *gorm.DB, drafter reminder.Drafter, audit *audit.Dispatcher) *ReminderHandler {
	return &ReminderHandler{db: db, drafter: drafter, audit: audit}
}

// ======================================================
// SMART REMINDER
// ======================================================

// DraftReminder asks the AI drafter for a reminder message for the given
// appointment and stores it against the customer, scheduled 48 hours
// before the appointment starts.
func (h *ReminderHandler) DraftReminder(c *gin.Context) {
	if h.drafter == nil {
		httperr.Internal(c, "drafter_disabled", "AI drafting is not configured.")
		return
	}

	appointmentID := c.Param("id")

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_load", "Failed to load the appointment.")
		return
	}

	if ap.IsBlock() {
		httperr.BadRequest(c, "not_a_booking", "Blocked slots have no customer to remind.")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", ap.CustomerID).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	draft, err := h.drafter.DraftReminder(c.Request.Context(), reminder.SmartReminderInput{
		CustomerName:        customer.Name,
		AppointmentDateTime: ap.StartTime.Format("2006-01-02 15:04"),
		PastBookingData:     customer.PastBookingData,
		UserBehaviorData:    customer.UserBehaviorData,
	})
	if err != nil {
		httperr.Internal(c, "draft_failed", "Failed to draft the reminder.")
		return
	}

	saved := models.CustomReminder{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Title:      "Appointment reminder",
		Message:    draft.ClientReminderMessage,
		Format:     draft.ReminderFormat,
		SendAt:     ap.StartTime.Add(-reminderLeadTime),
	}
	if err := h.db.Create(&saved).Error; err != nil {
		httperr.Internal(c, "failed_to_save", "Failed to save the reminder.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "reminder_drafted",
		Entity:   "custom_reminder",
		EntityID: saved.ID,
	})

	httpresp.Created(c, gin.H{
		"reminder": saved,
		"timing":   draft.ReminderTiming,
	})
}

// ======================================================
// FOLLOW-UP
// ======================================================

func (h *ReminderHandler) DraftFollowUp(c *gin.Context) {
	if h.drafter == nil {
		httperr.Internal(c, "drafter_disabled", "AI drafting is not configured.")
		return
	}

	customerID := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_load", "Failed to load the customer.")
		return
	}

	draft, err := h.drafter.DraftFollowUp(c.Request.Context(), reminder.FollowUpInput{
		CustomerName:    customer.Name,
		PastBookingData: customer.PastBookingData,
	})
	if err != nil {
		httperr.Internal(c, "draft_failed", "Failed to draft the follow-up.")
		return
	}

	// Anchor the follow-up to the customer's most recent booking when
	// one exists.
	var lastAppointmentID string
	var last models.Appointment
	err = h.db.
		Where("customer_id = ? AND kind = ?", customer.ID, models.KindBooking).
		Order("start_time DESC").
		First(&last).Error
	if err == nil {
		lastAppointmentID = last.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "failed_to_load", "Failed to load appointments.")
		return
	}

	saved := models.FollowUpReminder{
		ID:            uuid.NewString(),
		CustomerID:    customer.ID,
		AppointmentID: lastAppointmentID,
		Title:         draft.Title,
		Message:       draft.Message,
		WeeksAfter:    draft.WeeksAfter,
	}
	if err := h.db.Create(&saved).Error; err != nil {
		httperr.Internal(c, "failed_to_save", "Failed to save the follow-up.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "follow_up_drafted",
		Entity:   "follow_up_reminder",
		EntityID: saved.ID,
	})

	httpresp.Created(c, saved)
}
