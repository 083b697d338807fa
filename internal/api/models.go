package api

// List query defaults for GET /api/reservations.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type MessageResponse struct {
	Message string `json:"message"`
}

type SessionsResponse struct {
	ActiveSessions int               `json:"active_sessions"`
	States         map[string]string `json:"states"`
}
