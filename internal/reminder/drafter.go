package reminder

import "context"

// SmartReminderInput feeds the appointment-reminder draft: who the
// customer is, when the appointment is, and what we know about their
// booking habits.
type SmartReminderInput struct {
	CustomerName        string `json:"customer_name"`
	AppointmentDateTime string `json:"appointment_date_time"`
	PastBookingData     string `json:"past_booking_data"`
	UserBehaviorData    string `json:"user_behavior_data"`
}

type SmartReminderOutput struct {
	ClientReminderMessage string `json:"clientReminderMessage"`
	ReminderTiming        string `json:"reminderTiming"`
	ReminderFormat        string `json:"reminderFormat"`
}

type FollowUpInput struct {
	CustomerName    string `json:"customer_name"`
	PastBookingData string `json:"past_booking_data"`
}

type FollowUpOutput struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	WeeksAfter int    `json:"weeksAfter"`
}

// Drafter produces reminder and follow-up message drafts. The scheduler
// core never calls this; only the reminder endpoints do.
type Drafter interface {
	DraftReminder(ctx context.Context, in SmartReminderInput) (SmartReminderOutput, error)
	DraftFollowUp(ctx context.Context, in FollowUpInput) (FollowUpOutput, error)
}
