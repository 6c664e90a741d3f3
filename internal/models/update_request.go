package models

import "time"

// ===============================
// Update Request Status
// ===============================

const (
	UpdateStatusPending  = "pending"
	UpdateStatusApproved = "approved"
	UpdateStatusRejected = "rejected"
)

// CustomerUpdateRequest is raised when a returning customer books with a
// name or email that differs from the stored record. Staff approve or
// reject it; the transition out of pending is one-way.
type CustomerUpdateRequest struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	CustomerID string `gorm:"size:36;index" json:"customer_id"`

	CurrentName  string `gorm:"size:100" json:"current_name"`
	CurrentEmail string `gorm:"size:100" json:"current_email"`

	RequestedName  string `gorm:"size:100" json:"requested_name"`
	RequestedEmail string `gorm:"size:100" json:"requested_email"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
