package models

import "time"

// ===============================
// Appointment Kind
// ===============================

const (
	KindBooking = "booking"
	KindBlock   = "block"
)

// Appointment is either a customer booking or a manual block placed by
// staff. Both occupy exactly one calendar slot.
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CustomerID string `gorm:"size:36;index" json:"customer_id"`

	// Snapshot of the customer details as submitted at booking time.
	// The Customer record itself only changes through approved update
	// requests.
	CustomerName string `gorm:"size:100" json:"customer_name"`
	Email        string `gorm:"size:100" json:"email"`
	Phone        string `gorm:"size:20" json:"phone"`

	StartTime time.Time `gorm:"index" json:"date_time"`

	Kind string `gorm:"size:10;default:'booking'" json:"kind"`

	Notes string `gorm:"size:255" json:"notes"`

	Attachments []Attachment `gorm:"constraint:OnDelete:CASCADE" json:"attachments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) IsBlock() bool {
	return a.Kind == KindBlock
}

type Attachment struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	AppointmentID string `gorm:"size:36;index" json:"appointment_id"`

	Name        string `gorm:"size:255" json:"name"`
	Size        int64  `json:"size"`
	URL         string `gorm:"size:512" json:"url"`
	ContentType string `gorm:"size:100" json:"type"`

	CreatedAt time.Time `json:"created_at"`
}
