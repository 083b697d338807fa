package dialogue

import (
	"sync"
	"time"

	"rapidpark/internal/entities"
)

// State is the current collection stage of a call. States only move forward;
// a failed extraction re-prompts without leaving the state.
type State string

const (
	StateGreeting        State = "greeting"
	StateCollectName     State = "collect_name"
	StateCollectVehicle  State = "collect_vehicle"
	StateCollectArrival  State = "collect_arrival"
	StateCollectDuration State = "collect_duration"
	StateCollectEmail    State = "collect_email"
	StateConfirm         State = "confirm"
	StateCompleted       State = "completed"
)

// Session accumulates booking fields across the turns of one call. It holds
// no committed state of its own: until the reserve step commits, losing a
// session loses nothing but the conversation.
type Session struct {
	mu sync.Mutex

	CallID string
	State  State

	CustomerName    string
	VehicleReg      string
	VehicleClass    string
	ArrivalTime     time.Time
	DurationMinutes int
	Email           string
	Phone           string

	Quote       *entities.QuoteResponse
	Reservation *entities.ReservationResponse

	LastActivity time.Time
}
