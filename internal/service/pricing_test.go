package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rapidpark/internal/config"
	"rapidpark/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		LotName:                    "RapidPark-A",
		LotCapacity:                3,
		RateCentsPerHour:           400,
		RateCentsPerHourCar:        400,
		RateCentsPerHourMotorcycle: 300,
		RateCentsPerHourTruck:      600,
		MinChargeMinutes:           60,
		SessionIdleTimeout:         30 * time.Minute,
	}
}

func TestPriceCentsMinimumCharge(t *testing.T) {
	p := NewPricing(testConfig())
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// Anything under the minimum bills as one hour.
	assert.Equal(t, 400, p.PriceCents(start, start.Add(15*time.Minute), utils.ClassCar))
	assert.Equal(t, 400, p.PriceCents(start, start.Add(59*time.Minute), utils.ClassCar))
	assert.Equal(t, 400, p.PriceCents(start, start.Add(time.Hour), utils.ClassCar))
}

func TestPriceCentsPartialHoursRoundUp(t *testing.T) {
	p := NewPricing(testConfig())
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 800, p.PriceCents(start, start.Add(61*time.Minute), utils.ClassCar))
	assert.Equal(t, 800, p.PriceCents(start, start.Add(90*time.Minute), utils.ClassCar))
	assert.Equal(t, 800, p.PriceCents(start, start.Add(2*time.Hour), utils.ClassCar))
	assert.Equal(t, 1200, p.PriceCents(start, start.Add(2*time.Hour+time.Minute), utils.ClassCar))
}

func TestPriceCentsPerClassRates(t *testing.T) {
	p := NewPricing(testConfig())
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	assert.Equal(t, 800, p.PriceCents(start, end, utils.ClassCar))
	assert.Equal(t, 600, p.PriceCents(start, end, utils.ClassMotorcycle))
	assert.Equal(t, 1200, p.PriceCents(start, end, utils.ClassTruck))
	assert.Equal(t, 800, p.PriceCents(start, end, utils.ClassUnknown))
	assert.Equal(t, 800, p.PriceCents(start, end, ""))
}

func TestPriceCentsMonotonicInDuration(t *testing.T) {
	p := NewPricing(testConfig())
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	prev := 0
	for mins := 30; mins <= 600; mins += 30 {
		price := p.PriceCents(start, start.Add(time.Duration(mins)*time.Minute), utils.ClassCar)
		assert.GreaterOrEqual(t, price, prev, "price dropped at %d minutes", mins)
		prev = price
	}
}

func TestPriceDisplay(t *testing.T) {
	assert.Equal(t, "$8.00", PriceDisplay(800))
	assert.Equal(t, "$6.50", PriceDisplay(650))
	assert.Equal(t, "$0.00", PriceDisplay(0))
}
