package entities

// AgentWebhookRequest is one turn delivered by the voice transport.
type AgentWebhookRequest struct {
	CallID    string `json:"call_id"`
	EventType string `json:"event_type"` // call_started | call_ended | message
	Utterance string `json:"utterance,omitempty"`
}

// AgentWebhookResponse is the instruction back to the transport: the text to
// speak and whether to hang up after delivering it.
type AgentWebhookResponse struct {
	Message string `json:"message"`
	EndCall bool   `json:"end_call"`
}
