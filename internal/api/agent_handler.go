package api

import (
	"encoding/json"
	"net/http"

	"rapidpark/internal/dialogue"
	"rapidpark/internal/entities"
)

// VoiceAgentHandler is the generic webhook the voice transport drives: one
// POST per event (call started, call ended, or a spoken turn).
type VoiceAgentHandler struct {
	Machine *dialogue.Machine
}

func NewVoiceAgentHandler(machine *dialogue.Machine) *VoiceAgentHandler {
	return &VoiceAgentHandler{Machine: machine}
}

func (h *VoiceAgentHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var req entities.AgentWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.CallID == "" {
		http.Error(w, "call_id is required", http.StatusBadRequest)
		return
	}

	switch req.EventType {
	case "call_started":
		writeJSON(w, http.StatusOK, h.Machine.StartCall(req.CallID))
	case "call_ended":
		h.Machine.EndCall(req.CallID)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	default:
		writeJSON(w, http.StatusOK, h.Machine.Advance(req.CallID, req.Utterance))
	}
}
