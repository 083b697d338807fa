package db

import "time"

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusFinished  = "finished"
)

type Reservation struct {
	ID               int
	ConfirmationCode string
	CustomerName     string
	Email            string
	Phone            string
	VehicleReg       string
	VehicleClass     string
	LotName          string
	SpotNumber       int
	StartTime        time.Time
	EndTime          time.Time
	PriceCents       int
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SpotInterval is the slice of a confirmed reservation the allocator needs.
type SpotInterval struct {
	SpotNumber int
	StartTime  time.Time
	EndTime    time.Time
}
