package service

import (
	"fmt"
	"strings"
	"time"

	"rapidpark/internal/allocator"
	"rapidpark/internal/config"
	"rapidpark/internal/db"
	"rapidpark/internal/entities"
	apperrors "rapidpark/internal/errors"
	"rapidpark/internal/nlu"
	"rapidpark/internal/utils"
)

// ReservationStore is the durable set of reservations the engine runs
// against. CreateWithSpot must treat allocation-check-then-insert as one
// atomic unit per lot: two concurrent reserves for overlapping intervals may
// never both get the same spot.
type ReservationStore interface {
	ListConfirmed(lotName string) ([]db.SpotInterval, error)
	CreateWithSpot(res *db.Reservation, capacity int) error
	ListRecent(lotName string, limit int) ([]db.Reservation, error)
}

// TicketSender delivers the confirmation notification. Best-effort and
// asynchronous: implementations return immediately and swallow failures.
type TicketSender interface {
	SendReservationTicket(res entities.ReservationResponse)
}

type ReservationService struct {
	store    ReservationStore
	pricing  *Pricing
	sender   TicketSender
	lotName  string
	capacity int
	now      func() time.Time
}

func NewReservationService(store ReservationStore, pricing *Pricing, sender TicketSender, cfg *config.Config) *ReservationService {
	return &ReservationService{
		store:    store,
		pricing:  pricing,
		sender:   sender,
		lotName:  cfg.LotName,
		capacity: cfg.LotCapacity,
		now:      time.Now,
	}
}

// Quote validates the request, prices the interval and probes the allocator
// without persisting anything. Two quotes against an unchanged reservation
// set return the same answer.
func (s *ReservationService) Quote(req entities.QuoteRequest) (*entities.QuoteResponse, error) {
	if strings.TrimSpace(req.VehicleReg) == "" {
		return nil, apperrors.Validation("vehicle_reg is required")
	}
	class, err := normalizeClass(req.VehicleClass)
	if err != nil {
		return nil, err
	}

	start, end, err := s.resolveInterval(req.StartTime, req.EndTime, req.DurationHours, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	price := s.pricing.PriceCents(start, end, class)

	existing, err := s.store.ListConfirmed(s.lotName)
	if err != nil {
		return nil, fmt.Errorf("checking availability: %w", err)
	}
	spot := allocator.FirstFree(s.capacity, start, end, existing)

	mins := int(end.Sub(start).Minutes())
	resp := &entities.QuoteResponse{
		LotName:         s.lotName,
		VehicleReg:      utils.NormalizeVehicleReg(req.VehicleReg),
		VehicleClass:    class,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: mins,
		DurationHours:   float64(mins) / 60,
		PriceCents:      price,
		PriceDisplay:    PriceDisplay(price),
		Available:       spot > 0,
	}
	if spot > 0 {
		resp.SuggestedSpot = spot
		resp.SuggestedLabel = SpotLabel(s.lotName, spot)
	}
	return resp, nil
}

// Reserve runs the same validation and pricing as Quote, then commits a
// reservation atomically with its spot assignment. The confirmation email
// and SMS are fire-and-forget: their failure never fails the reservation.
func (s *ReservationService) Reserve(req entities.ReservationRequest) (*entities.ReservationResponse, error) {
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.VehicleReg) == "" {
		return nil, apperrors.Validation("customer_name and vehicle_reg are required")
	}
	class, err := normalizeClass(req.VehicleClass)
	if err != nil {
		return nil, err
	}
	if req.Email != "" && !nlu.IsValidEmail(req.Email) {
		return nil, apperrors.Validation("invalid email format")
	}

	start, end, err := s.resolveInterval(req.StartTime, req.EndTime, req.DurationHours, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	reg := utils.NormalizeVehicleReg(req.VehicleReg)
	price := s.pricing.PriceCents(start, end, class)

	res := &db.Reservation{
		ConfirmationCode: GenerateConfirmationCode(req.VehicleReg, start),
		CustomerName:     strings.TrimSpace(req.CustomerName),
		Email:            req.Email,
		Phone:            req.Phone,
		VehicleReg:       reg,
		VehicleClass:     class,
		LotName:          s.lotName,
		StartTime:        start,
		EndTime:          end,
		PriceCents:       price,
		Status:           db.StatusConfirmed,
	}

	if err := s.store.CreateWithSpot(res, s.capacity); err != nil {
		return nil, err
	}

	resp := toResponse(res)
	if s.sender != nil && (res.Email != "" || res.Phone != "") {
		s.sender.SendReservationTicket(*resp)
	}
	return resp, nil
}

// ListRecent returns the most recently created reservations, newest first.
func (s *ReservationService) ListRecent(limit int) ([]entities.ReservationResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	rows, err := s.store.ListRecent(s.lotName, limit)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	out := make([]entities.ReservationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toResponse(&rows[i]))
	}
	return out, nil
}

// resolveInterval applies the end-time precedence: explicit end time, then
// duration hours, then duration minutes. Start defaults to now.
func (s *ReservationService) resolveInterval(start, end *time.Time, durHours *float64, durMinutes *int) (time.Time, time.Time, error) {
	st := s.now().UTC().Truncate(time.Second)
	if start != nil {
		st = *start
	}

	var en time.Time
	switch {
	case end != nil:
		en = *end
	case durHours != nil:
		en = st.Add(time.Duration(*durHours * float64(time.Hour)))
	case durMinutes != nil:
		en = st.Add(time.Duration(*durMinutes) * time.Minute)
	default:
		return time.Time{}, time.Time{}, apperrors.Validation("provide end_time, duration_hours, or duration_minutes")
	}

	if !en.After(st) {
		return time.Time{}, time.Time{}, apperrors.Validation("end_time must be after start_time")
	}
	return st, en, nil
}

func normalizeClass(class string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(class))
	if c == "" || c == utils.ClassUnknown {
		return utils.ClassUnknown, nil
	}
	if !utils.IsKnownVehicleClass(c) {
		return "", apperrors.Validation("vehicle_class must be one of: car, motorcycle, truck")
	}
	return c, nil
}

// GenerateConfirmationCode derives the booking reference from the normalized
// registration and the start instant. Deterministic so a retried reserve
// with identical input reproduces the same code. Format is parsed by
// downstream tooling; do not change it.
func GenerateConfirmationCode(vehicleReg string, start time.Time) string {
	return fmt.Sprintf("RP-%s-%s", utils.NormalizeVehicleReg(vehicleReg), start.Format("01021504"))
}

// SpotLabel renders a spot for display, prefixed by the lot zone: the
// character after the last hyphen in the lot name (RapidPark-A -> A), or the
// lot's first character when there is no hyphen.
func SpotLabel(lotName string, spotNumber int) string {
	if spotNumber <= 0 {
		return ""
	}
	zone := ""
	if idx := strings.LastIndex(lotName, "-"); idx >= 0 {
		tail := strings.TrimSpace(lotName[idx+1:])
		if tail != "" {
			zone = strings.ToUpper(tail[:1])
		}
	}
	if zone == "" && lotName != "" {
		zone = strings.ToUpper(lotName[:1])
	}
	return fmt.Sprintf("%s%d", zone, spotNumber)
}

func toResponse(res *db.Reservation) *entities.ReservationResponse {
	mins := int(res.EndTime.Sub(res.StartTime).Minutes())
	return &entities.ReservationResponse{
		ID:               res.ID,
		ConfirmationCode: res.ConfirmationCode,
		CustomerName:     res.CustomerName,
		Email:            res.Email,
		Phone:            res.Phone,
		VehicleReg:       res.VehicleReg,
		VehicleClass:     res.VehicleClass,
		LotName:          res.LotName,
		SpotNumber:       res.SpotNumber,
		SpotLabel:        SpotLabel(res.LotName, res.SpotNumber),
		StartTime:        res.StartTime,
		EndTime:          res.EndTime,
		DurationMinutes:  mins,
		PriceCents:       res.PriceCents,
		PriceDisplay:     PriceDisplay(res.PriceCents),
		Status:           res.Status,
		CreatedAt:        res.CreatedAt,
	}
}

// SetClock overrides the service clock. Test hook.
func (s *ReservationService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}
