package service

import (
	"fmt"
	"time"

	"rapidpark/internal/config"
	"rapidpark/internal/utils"
)

// Pricing maps a time interval and vehicle class to a price in cents.
type Pricing struct {
	baseRate       int
	carRate        int
	motorcycleRate int
	truckRate      int
	minChargeMins  int
}

func NewPricing(cfg *config.Config) *Pricing {
	return &Pricing{
		baseRate:       cfg.RateCentsPerHour,
		carRate:        cfg.RateCentsPerHourCar,
		motorcycleRate: cfg.RateCentsPerHourMotorcycle,
		truckRate:      cfg.RateCentsPerHourTruck,
		minChargeMins:  cfg.MinChargeMinutes,
	}
}

// RateForClass returns the hourly rate in cents. An unknown or empty class
// falls back to the base rate.
func (p *Pricing) RateForClass(vehicleClass string) int {
	switch vehicleClass {
	case utils.ClassCar:
		return p.carRate
	case utils.ClassMotorcycle:
		return p.motorcycleRate
	case utils.ClassTruck:
		return p.truckRate
	}
	return p.baseRate
}

// PriceCents computes the charge for [start, end). Any positive stay below
// the minimum is charged the minimum, and partial hours always round up.
// Pure and total: callers reject end <= start before getting here.
func (p *Pricing) PriceCents(start, end time.Time, vehicleClass string) int {
	totalMinutes := int(end.Sub(start).Seconds()) / 60
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	billableMinutes := totalMinutes
	if billableMinutes < p.minChargeMins {
		billableMinutes = p.minChargeMins
	}
	hours := (billableMinutes + 59) / 60
	return hours * p.RateForClass(vehicleClass)
}

// PriceDisplay formats cents as a dollar string for spoken and email output.
func PriceDisplay(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
