package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bookwise-app/bookwise-server/internal/httperr"
)

// ======================================================
// BUSINESS ERROR MAPPING
// ======================================================

var businessMessages = map[string]string{
	"unknown_slot":          "That time is not a bookable slot.",
	"invalid_date":          "Invalid date.",
	"date_in_past":          "That date has already passed.",
	"invalid_phone":         "Invalid phone number.",
	"invalid_email":         "Invalid email address.",
	"too_soon":              "That slot is too close to the current time.",
	"slot_taken":            "That slot is no longer available.",
	"appointment_not_found": "Appointment not found.",
	"customer_not_found":    "Customer not found.",
	"request_not_found":     "Update request not found.",
	"request_not_pending":   "Update request has already been resolved.",
	"cannot_edit_block":     "Blocked slots cannot be edited.",
}

// writeError translates a use-case error into an HTTP response.
// Business errors map onto 400/404/409; anything else is a 500.
func writeError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, fallbackCode, fallbackMsg)
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Request could not be processed."
	}

	switch code {
	case "slot_taken":
		httperr.Conflict(c, code, msg)
	case "appointment_not_found", "customer_not_found", "request_not_found":
		httperr.NotFound(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
