package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rapidpark/internal/dialogue"
	"rapidpark/internal/repository"
	"rapidpark/internal/service"
)

type AdminHandler struct {
	Service  *service.AdminService
	Sessions dialogue.SessionStore
}

func NewAdminHandler(svc *service.AdminService, sessions dialogue.SessionStore) *AdminHandler {
	return &AdminHandler{Service: svc, Sessions: sessions}
}

func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.Service.ListReservations(limit, offset)
	if err != nil {
		http.Error(w, "Could not list reservations", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *AdminHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if err := h.Service.CancelReservation(code); err != nil {
		if repository.IsNotFound(err) {
			http.Error(w, "Reservation not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not cancel reservation", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Reservation cancelled"})
}

// ListSessions shows the live dialogue sessions and their states.
func (h *AdminHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	states := h.Sessions.ActiveStates()
	resp := SessionsResponse{
		ActiveSessions: len(states),
		States:         make(map[string]string, len(states)),
	}
	for callID, state := range states {
		resp.States[callID] = string(state)
	}
	writeJSON(w, http.StatusOK, resp)
}
