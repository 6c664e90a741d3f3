package models

import "time"

// Customer records are created on the first booking with an unknown phone
// number and are never deleted. PhoneDigits holds the normalized phone
// (digits only) and is the matching key for returning customers.
type Customer struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:100" json:"email"`
	Phone       string `gorm:"size:20" json:"phone"`
	PhoneDigits string `gorm:"size:20;uniqueIndex" json:"-"`

	PastBookingData  string `gorm:"type:text" json:"past_booking_data"`
	UserBehaviorData string `gorm:"type:text" json:"user_behavior_data"`

	ProfilePictureURL string `gorm:"size:512" json:"profile_picture_url"`
	Birthday          string `gorm:"size:10" json:"birthday"`

	History           []CustomerHistoryEntry `gorm:"constraint:OnDelete:CASCADE" json:"history"`
	CustomReminders   []CustomReminder       `gorm:"constraint:OnDelete:CASCADE" json:"custom_reminders"`
	FollowUpReminders []FollowUpReminder     `gorm:"constraint:OnDelete:CASCADE" json:"follow_up_reminders"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerHistoryEntry struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CustomerID string `gorm:"size:36;index" json:"customer_id"`

	Entry string `gorm:"size:255" json:"entry"`

	CreatedAt time.Time `json:"created_at"`
}
