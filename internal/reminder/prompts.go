package reminder

import "fmt"

func smartReminderPrompt(in SmartReminderInput) string {
	return fmt.Sprintf(`You are an AI assistant for a business, designed to generate smart appointment reminders for clients.

The reminder should be scheduled for 48 hours before the appointment.

Based on the customer's past booking data and user behavior data, determine the optimal format for the reminder.
Consider factors such as the customer's preferred communication channel.

Customer Name: %s
Appointment Date/Time: %s
Past Booking Data: %s
User Behavior Data: %s

Generate a reminder message for the client.
Specify the reminder timing as "48 hours before the appointment".
Choose the most appropriate reminder format (e.g., SMS, email).

Respond with a JSON object with exactly these keys:
"clientReminderMessage" (string), "reminderTiming" (string), "reminderFormat" (string).`,
		in.CustomerName,
		in.AppointmentDateTime,
		in.PastBookingData,
		in.UserBehaviorData,
	)
}

func followUpPrompt(in FollowUpInput) string {
	return fmt.Sprintf(`You are an AI assistant for a service business (like a salon or clinic) that suggests proactive follow-up reminders to re-engage clients.

Based on the client's past booking data, suggest a relevant follow-up.
For example, if they often get a 'trim', suggest it's 'Time for a trim!'.

If no specific recurring service is mentioned, create a general 'we miss you' style follow-up.

Suggest an appropriate time interval in weeks. For a haircut trim, 6-8 weeks is typical. For a general check-in, maybe 12 weeks.

Client Name: %s
Past Booking Data: %s

Generate a compelling title, a friendly message, and a recommended number of weeks for the follow-up.

Respond with a JSON object with exactly these keys:
"title" (string), "message" (string), "weeksAfter" (number).`,
		in.CustomerName,
		in.PastBookingData,
	)
}
