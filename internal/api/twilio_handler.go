package api

import (
	"log"
	"net/http"

	"github.com/twilio/twilio-go/twiml"

	"rapidpark/internal/dialogue"
	"rapidpark/internal/entities"
)

// TwilioVoiceHandler adapts Twilio's speech webhook to the dialogue machine.
// Twilio posts form data per turn: CallSid identifies the call, SpeechResult
// carries the transcribed utterance, and a completed CallStatus is the
// call-ended signal.
type TwilioVoiceHandler struct {
	Machine *dialogue.Machine
	Action  string
}

func NewTwilioVoiceHandler(machine *dialogue.Machine) *TwilioVoiceHandler {
	return &TwilioVoiceHandler{Machine: machine, Action: "/webhook/twilio/voice"}
}

func (h *TwilioVoiceHandler) HandleVoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	callSid := r.FormValue("CallSid")
	if callSid == "" {
		http.Error(w, "CallSid is required", http.StatusBadRequest)
		return
	}

	if status := r.FormValue("CallStatus"); status == "completed" || status == "failed" {
		h.Machine.EndCall(callSid)
		w.WriteHeader(http.StatusOK)
		return
	}

	speech := r.FormValue("SpeechResult")
	var reply entities.AgentWebhookResponse
	if speech == "" {
		// First webhook of the call carries no speech yet.
		h.Machine.SetPhone(callSid, r.FormValue("From"))
		reply = h.Machine.StartCall(callSid)
	} else {
		reply = h.Machine.Advance(callSid, speech)
	}

	h.writeTwiML(w, reply)
}

func (h *TwilioVoiceHandler) writeTwiML(w http.ResponseWriter, reply entities.AgentWebhookResponse) {
	say := &twiml.VoiceSay{Message: reply.Message}

	var verbs []twiml.Element
	if reply.EndCall {
		verbs = []twiml.Element{say, &twiml.VoiceHangup{}}
	} else {
		verbs = []twiml.Element{&twiml.VoiceGather{
			Input:         "speech",
			Action:        h.Action,
			Method:        "POST",
			SpeechTimeout: "auto",
			InnerElements: []twiml.Element{say},
		}}
	}

	doc, err := twiml.Voice(verbs)
	if err != nil {
		log.Printf("twilio: failed to render TwiML: %v", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write([]byte(doc))
}
