package entities

// Payloads for the standalone extractor endpoints.

type ParseUtteranceRequest struct {
	Utterance string `json:"utterance"`
	StartTime string `json:"start_time,omitempty"` // ISO-8601, duration parse only
}

type ParseArrivalResponse struct {
	StartTime string `json:"start_time"`
}

type ParseDurationResponse struct {
	DurationMinutes int     `json:"duration_minutes"`
	DurationHours   float64 `json:"duration_hours"`
	EndTime         string  `json:"end_time,omitempty"`
}

type ParseEmailResponse struct {
	Email string `json:"email"`
	Valid bool   `json:"valid"`
}
