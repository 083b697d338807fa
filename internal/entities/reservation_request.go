package entities

import "time"

type ReservationRequest struct {
	CustomerName    string     `json:"customer_name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	VehicleReg      string     `json:"vehicle_reg"`
	VehicleClass    string     `json:"vehicle_class,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationHours   *float64   `json:"duration_hours,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}
