package entities

import "time"

type QuoteRequest struct {
	VehicleReg      string     `json:"vehicle_reg"`
	VehicleClass    string     `json:"vehicle_class,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationHours   *float64   `json:"duration_hours,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}

type QuoteResponse struct {
	LotName         string    `json:"lot_name"`
	VehicleReg      string    `json:"vehicle_reg"`
	VehicleClass    string    `json:"vehicle_class,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	DurationHours   float64   `json:"duration_hours"`
	PriceCents      int       `json:"price_cents"`
	PriceDisplay    string    `json:"price_display"`
	Available       bool      `json:"available"`
	SuggestedSpot   int       `json:"suggested_spot,omitempty"`
	SuggestedLabel  string    `json:"suggested_label,omitempty"`
}
