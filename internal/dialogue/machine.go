// Package dialogue drives the multi-turn intake conversation: a fixed
// forward sequence of collection states that gathers booking fields from
// utterances and hands them to the quote/reserve service.
package dialogue

import (
	"fmt"
	"log"
	"strings"
	"time"

	"rapidpark/internal/entities"
	apperrors "rapidpark/internal/errors"
	"rapidpark/internal/nlu"
	"rapidpark/internal/utils"

	goerrors "errors"
)

// Booker is the slice of the reservation service the machine drives.
type Booker interface {
	Quote(req entities.QuoteRequest) (*entities.QuoteResponse, error)
	Reserve(req entities.ReservationRequest) (*entities.ReservationResponse, error)
}

type Machine struct {
	sessions SessionStore
	booker   Booker
	now      func() time.Time
}

func NewMachine(sessions SessionStore, booker Booker) *Machine {
	return &Machine{
		sessions: sessions,
		booker:   booker,
		now:      time.Now,
	}
}

const greetingMessage = "Hello! Welcome to RapidPark automated reservation system. " +
	"I can help you reserve a parking spot. May I have your name please?"

var skipWords = []string{"skip", "no email", "no thanks", "none"}

var affirmativeWords = []string{"yes", "confirm", "correct", "proceed", "book"}

// StartCall handles the call-started signal: it creates the session, moves
// it past GREETING and returns the opening prompt.
func (m *Machine) StartCall(callID string) entities.AgentWebhookResponse {
	sess := m.sessions.GetOrCreate(callID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.LastActivity = m.now()
	if sess.State == StateGreeting {
		sess.State = StateCollectName
	}
	return entities.AgentWebhookResponse{Message: greetingMessage}
}

// EndCall tears the session down. Safe to call for unknown ids.
func (m *Machine) EndCall(callID string) {
	m.sessions.Delete(callID)
}

// SetPhone records the caller's number on the session so the reservation
// can carry it. Used by the Twilio transport, which knows the From number.
func (m *Machine) SetPhone(callID, phone string) {
	if phone == "" {
		return
	}
	sess := m.sessions.GetOrCreate(callID)
	sess.mu.Lock()
	sess.Phone = phone
	sess.mu.Unlock()
}

// Advance processes one utterance for the call and returns the next prompt.
// Turns for the same call are serialized on the session lock; a panic from
// any downstream call degrades to an apology that ends the call rather than
// leaving the session half-advanced.
func (m *Machine) Advance(callID, utterance string) (resp entities.AgentWebhookResponse) {
	sess := m.sessions.GetOrCreate(callID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("dialogue: panic during turn for call %s: %v", callID, r)
			sess.State = StateCompleted
			resp = entities.AgentWebhookResponse{
				Message: "I'm sorry, I encountered an error. Please try again or contact customer service.",
				EndCall: true,
			}
		}
	}()

	sess.LastActivity = m.now()

	switch sess.State {
	case StateGreeting:
		// No call-started signal was delivered; greet on the first turn.
		sess.State = StateCollectName
		return entities.AgentWebhookResponse{Message: greetingMessage}
	case StateCollectName:
		return m.collectName(sess, utterance)
	case StateCollectVehicle:
		return m.collectVehicle(sess, utterance)
	case StateCollectArrival:
		return m.collectArrival(sess, utterance)
	case StateCollectDuration:
		return m.collectDuration(sess, utterance)
	case StateCollectEmail:
		return m.collectEmail(sess, utterance)
	case StateConfirm:
		return m.confirm(sess, utterance)
	case StateCompleted:
		return entities.AgentWebhookResponse{
			Message: "This reservation call is complete. Thank you for choosing RapidPark. Goodbye!",
			EndCall: true,
		}
	}

	// Unreachable while the switch above stays total over State.
	return entities.AgentWebhookResponse{
		Message: "I'm sorry, I didn't understand that. Could you please repeat?",
	}
}

func (m *Machine) collectName(sess *Session, utterance string) entities.AgentWebhookResponse {
	name := strings.TrimSpace(utterance)
	if len(name) <= 2 {
		return entities.AgentWebhookResponse{
			Message: "I didn't catch that. Could you please tell me your full name?",
		}
	}
	sess.CustomerName = name
	sess.State = StateCollectVehicle
	return entities.AgentWebhookResponse{
		Message: fmt.Sprintf("Thank you, %s. Please tell me your vehicle registration number and type. "+
			"For example, you can say 'KA01AB1234, car' or 'ABC-1234, motorcycle'.", name),
	}
}

func (m *Machine) collectVehicle(sess *Session, utterance string) entities.AgentWebhookResponse {
	reg, class := nlu.ExtractVehicle(utterance)
	if reg == "" {
		return entities.AgentWebhookResponse{
			Message: "I couldn't understand the vehicle registration. " +
				"Please say your vehicle registration number clearly, like 'KA 01 AB 1234'.",
		}
	}
	if class == utils.ClassUnknown {
		class = utils.ClassCar
	}
	sess.VehicleReg = reg
	sess.VehicleClass = class
	sess.State = StateCollectArrival
	return entities.AgentWebhookResponse{
		Message: fmt.Sprintf("Got it, %s with registration %s. When do you plan to arrive? "+
			"You can say something like 'today at 3 PM' or 'tomorrow at 10 AM'.", class, reg),
	}
}

func (m *Machine) collectArrival(sess *Session, utterance string) entities.AgentWebhookResponse {
	arrival, err := nlu.ParseArrival(utterance, m.now())
	if err != nil {
		return entities.AgentWebhookResponse{
			Message: "I couldn't understand that time. Please try again, like 'today at 3 PM' or 'tomorrow at 10 AM'.",
		}
	}
	sess.ArrivalTime = arrival
	sess.State = StateCollectDuration
	return entities.AgentWebhookResponse{
		Message: fmt.Sprintf("Perfect, arriving on %s. How long do you need the parking spot? "+
			"For example, '2 hours' or '3 hours 30 minutes'.", arrival.Format("January 2 at 3:04 PM")),
	}
}

func (m *Machine) collectDuration(sess *Session, utterance string) entities.AgentWebhookResponse {
	reprompt := entities.AgentWebhookResponse{
		Message: "I couldn't understand the duration. Please say how long you need parking, like '2 hours' or '90 minutes'.",
	}

	mins, err := nlu.ParseDurationMinutes(utterance)
	if err != nil {
		return reprompt
	}

	start := sess.ArrivalTime
	quote, err := m.booker.Quote(entities.QuoteRequest{
		VehicleReg:      sess.VehicleReg,
		VehicleClass:    sess.VehicleClass,
		StartTime:       &start,
		DurationMinutes: &mins,
	})
	if err != nil {
		// The parse succeeded but the quote did not; stay here rather than
		// reach CONFIRM without a price.
		log.Printf("dialogue: quote failed for call %s: %v", sess.CallID, err)
		return reprompt
	}

	sess.DurationMinutes = mins
	sess.Quote = quote
	sess.State = StateCollectEmail

	spotText := "a spot"
	if quote.Available {
		spotText = fmt.Sprintf("spot %s", quote.SuggestedLabel)
	}
	availText := fmt.Sprintf("We have %s in %s.", spotText, quote.LotName)
	if !quote.Available {
		availText = fmt.Sprintf("Please note %s is fully booked for that time, but I can still take your details.", quote.LotName)
	}

	return entities.AgentWebhookResponse{
		Message: fmt.Sprintf("Great! For %s of parking, the price will be %s. %s "+
			"Would you like to provide an email address for your confirmation ticket? You can say your email or say 'skip'.",
			formatDuration(mins), quote.PriceDisplay, availText),
	}
}

func (m *Machine) collectEmail(sess *Session, utterance string) entities.AgentWebhookResponse {
	lower := strings.ToLower(utterance)
	skipped := false
	for _, w := range skipWords {
		if strings.Contains(lower, w) {
			skipped = true
			break
		}
	}

	if skipped {
		sess.Email = ""
	} else {
		email, err := nlu.ExtractEmail(utterance)
		if err != nil {
			return entities.AgentWebhookResponse{
				Message: "I couldn't understand that email. Please say it clearly, like 'john dot doe at gmail dot com', or say 'skip'.",
			}
		}
		sess.Email = email
	}

	sess.State = StateConfirm
	return entities.AgentWebhookResponse{Message: m.confirmationSummary(sess)}
}

func (m *Machine) confirmationSummary(sess *Session) string {
	// Guarded by the COLLECT_DURATION transition: the session cannot be in
	// CONFIRM without a quote.
	msg := fmt.Sprintf("Let me confirm your reservation. Name: %s. Vehicle: %s, registration %s. "+
		"Arriving: %s. Duration: %s. Price: %s. ",
		sess.CustomerName, sess.VehicleClass, sess.VehicleReg,
		sess.ArrivalTime.Format("January 2 at 3:04 PM"),
		formatDuration(sess.DurationMinutes), sess.Quote.PriceDisplay)
	if sess.Email != "" {
		msg += fmt.Sprintf("Email: %s. ", sess.Email)
	}
	msg += "Should I confirm this reservation? Say 'yes' to confirm or 'no' to cancel."
	return msg
}

func (m *Machine) confirm(sess *Session, utterance string) entities.AgentWebhookResponse {
	if sess.Quote == nil {
		sess.State = StateCompleted
		return entities.AgentWebhookResponse{
			Message: "I'm sorry, there was an error getting your quote. Please call back to start over.",
			EndCall: true,
		}
	}

	lower := strings.ToLower(utterance)
	affirmed := false
	for _, w := range affirmativeWords {
		if strings.Contains(lower, w) {
			affirmed = true
			break
		}
	}

	// Ambiguous input never creates a reservation.
	if !affirmed {
		sess.State = StateCompleted
		return entities.AgentWebhookResponse{
			Message: "No problem, I've cancelled this reservation. If you'd like to try again, please call back. Goodbye!",
			EndCall: true,
		}
	}

	start := sess.ArrivalTime
	mins := sess.DurationMinutes
	reservation, err := m.booker.Reserve(entities.ReservationRequest{
		CustomerName:    sess.CustomerName,
		Email:           sess.Email,
		Phone:           sess.Phone,
		VehicleReg:      sess.VehicleReg,
		VehicleClass:    sess.VehicleClass,
		StartTime:       &start,
		DurationMinutes: &mins,
	})
	if err != nil {
		sess.State = StateCompleted
		if goerrors.Is(err, apperrors.ErrNoSpotsAvailable) {
			return entities.AgentWebhookResponse{
				Message: "I'm sorry, there are no spots available for that time anymore. Please call back to try a different time. Goodbye!",
				EndCall: true,
			}
		}
		log.Printf("dialogue: reserve failed for call %s: %v", sess.CallID, err)
		return entities.AgentWebhookResponse{
			Message: "I'm sorry, there was an error creating your reservation. Please try again later or call our customer service.",
			EndCall: true,
		}
	}

	sess.Reservation = reservation
	sess.State = StateCompleted

	msg := fmt.Sprintf("Perfect! Your reservation is confirmed. Your confirmation code is %s. Your spot is %s in %s. ",
		reservation.ConfirmationCode, reservation.SpotLabel, reservation.LotName)
	if sess.Email != "" {
		msg += fmt.Sprintf("A confirmation email has been sent to %s. ", sess.Email)
	}
	msg += "Thank you for choosing RapidPark. Have a great day!"

	return entities.AgentWebhookResponse{Message: msg, EndCall: true}
}

func formatDuration(mins int) string {
	hours := mins / 60
	rem := mins % 60
	switch {
	case hours > 0 && rem > 0:
		return fmt.Sprintf("%d hours %d minutes", hours, rem)
	case hours > 0:
		return fmt.Sprintf("%d hours", hours)
	default:
		return fmt.Sprintf("%d minutes", rem)
	}
}

// SetClock overrides the machine clock. Test hook.
func (m *Machine) SetClock(now func() time.Time) {
	if now != nil {
		m.now = now
	}
}
