package dto

import "time"

type AppointmentDTO struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Kind         string    `json:"kind"`
	Slot         string    `json:"slot"`
	DateTime     time.Time `json:"date_time"`
	Notes        string    `json:"notes"`
}

type DayDTO struct {
	Date         string           `json:"date"`
	FullyBlocked bool             `json:"fully_blocked"`
	Appointments []AppointmentDTO `json:"appointments"`
}

type WeekDTO struct {
	WeekStart string   `json:"week_start"`
	Days      []DayDTO `json:"days"`
}
