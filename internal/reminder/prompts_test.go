package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmartReminderPrompt_CarriesAllFields(t *testing.T) {
	p := smartReminderPrompt(SmartReminderInput{
		CustomerName:        "Alice Johnson",
		AppointmentDateTime: "2026-09-11 10:00",
		PastBookingData:     "3 previous appointments, prefers mornings",
		UserBehaviorData:    "Responds to email reminders",
	})

	assert.Contains(t, p, "Alice Johnson")
	assert.Contains(t, p, "2026-09-11 10:00")
	assert.Contains(t, p, "prefers mornings")
	assert.Contains(t, p, "Responds to email reminders")
	assert.Contains(t, p, "48 hours before the appointment")
	assert.Contains(t, p, `"clientReminderMessage"`)
}

func TestFollowUpPrompt_CarriesAllFields(t *testing.T) {
	p := followUpPrompt(FollowUpInput{
		CustomerName:    "Bob Williams",
		PastBookingData: "Usually books a trim every 6-8 weeks",
	})

	assert.Contains(t, p, "Bob Williams")
	assert.Contains(t, p, "trim every 6-8 weeks")
	assert.Contains(t, p, `"weeksAfter"`)
}
