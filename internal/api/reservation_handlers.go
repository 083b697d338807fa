package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rapidpark/internal/entities"
	apperrors "rapidpark/internal/errors"
	"rapidpark/internal/service"
)

type ReservationHandler struct {
	Service *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req entities.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	quote, err := h.Service.Quote(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	res, err := h.Service.Reserve(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	limit := DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxListLimit {
			http.Error(w, "limit must be between 1 and 200", http.StatusBadRequest)
			return
		}
		limit = n
	}
	items, err := h.Service.ListRecent(limit)
	if err != nil {
		http.Error(w, "Could not list reservations", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ReservationHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperrors.ErrNoSpotsAvailable) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	var he *apperrors.HTTPError
	if errors.As(err, &he) {
		http.Error(w, he.Message, he.Code)
		return
	}
	http.Error(w, "Internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
