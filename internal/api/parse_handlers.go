package api

import (
	"encoding/json"
	"net/http"
	"time"

	"rapidpark/internal/entities"
	"rapidpark/internal/nlu"
)

// ParseHandler exposes the extractors directly so external agents can use
// the same parsing the dialogue machine does.
type ParseHandler struct {
	now func() time.Time
}

func NewParseHandler() *ParseHandler {
	return &ParseHandler{now: time.Now}
}

func (h *ParseHandler) ParseArrival(w http.ResponseWriter, r *http.Request) {
	var req entities.ParseUtteranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	arrival, err := nlu.ParseArrival(req.Utterance, h.now().UTC())
	if err != nil {
		http.Error(w, "Could not parse arrival time", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, entities.ParseArrivalResponse{
		StartTime: arrival.Format(time.RFC3339),
	})
}

func (h *ParseHandler) ParseDuration(w http.ResponseWriter, r *http.Request) {
	var req entities.ParseUtteranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	mins, err := nlu.ParseDurationMinutes(req.Utterance)
	if err != nil {
		http.Error(w, "Could not parse duration", http.StatusBadRequest)
		return
	}

	resp := entities.ParseDurationResponse{
		DurationMinutes: mins,
		DurationHours:   float64(mins) / 60,
	}
	if req.StartTime != "" {
		start, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			http.Error(w, "start_time must be ISO-8601", http.StatusBadRequest)
			return
		}
		resp.EndTime = start.Add(time.Duration(mins) * time.Minute).Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ParseHandler) ParseEmail(w http.ResponseWriter, r *http.Request) {
	var req entities.ParseUtteranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	email, err := nlu.ExtractEmail(req.Utterance)
	if err != nil {
		http.Error(w, "Could not parse email", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, entities.ParseEmailResponse{Email: email, Valid: true})
}
