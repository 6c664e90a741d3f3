package models

import "time"

// CustomReminder is an AI-drafted appointment reminder stored against a
// customer, scheduled relative to a concrete appointment.
type CustomReminder struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	CustomerID string `gorm:"size:36;index" json:"customer_id"`

	Title   string    `gorm:"size:100" json:"title"`
	Message string    `gorm:"type:text" json:"message"`
	Format  string    `gorm:"size:20" json:"format"`
	SendAt  time.Time `json:"send_at"`

	CreatedAt time.Time `json:"created_at"`
}

// FollowUpReminder is an AI-drafted re-engagement message suggested some
// number of weeks after a customer's last appointment.
type FollowUpReminder struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	CustomerID    string `gorm:"size:36;index" json:"customer_id"`
	AppointmentID string `gorm:"size:36" json:"appointment_id"`

	Title      string `gorm:"size:100" json:"title"`
	Message    string `gorm:"type:text" json:"message"`
	WeeksAfter int    `json:"weeks_after"`

	CreatedAt time.Time `json:"created_at"`
}
