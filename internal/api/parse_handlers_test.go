package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rapidpark/internal/entities"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestParseArrivalHandler(t *testing.T) {
	h := NewParseHandler()
	h.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }

	rec := postJSON(t, h.ParseArrival, entities.ParseUtteranceRequest{Utterance: "today at 3 PM"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entities.ParseArrivalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-06-01T15:00:00Z", resp.StartTime)

	rec = postJSON(t, h.ParseArrival, entities.ParseUtteranceRequest{Utterance: "whenever"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseDurationHandler(t *testing.T) {
	h := NewParseHandler()

	rec := postJSON(t, h.ParseDuration, entities.ParseUtteranceRequest{
		Utterance: "2 hours 30 minutes",
		StartTime: "2025-06-01T15:00:00Z",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entities.ParseDurationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 150, resp.DurationMinutes)
	assert.InDelta(t, 2.5, resp.DurationHours, 0.001)
	assert.Equal(t, "2025-06-01T17:30:00Z", resp.EndTime)

	rec = postJSON(t, h.ParseDuration, entities.ParseUtteranceRequest{Utterance: "a while"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseEmailHandler(t *testing.T) {
	h := NewParseHandler()

	rec := postJSON(t, h.ParseEmail, entities.ParseUtteranceRequest{Utterance: "john dot doe at gmail dot com"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entities.ParseEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "john.doe@gmail.com", resp.Email)
	assert.True(t, resp.Valid)

	rec = postJSON(t, h.ParseEmail, entities.ParseUtteranceRequest{Utterance: "no idea"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
