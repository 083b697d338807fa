package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"rapidpark/internal/api"
	"rapidpark/internal/auth"
	"rapidpark/internal/config"
	"rapidpark/internal/dialogue"
	"rapidpark/internal/repository"
	"rapidpark/internal/service"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	reservationRepo := repository.NewReservationRepository(db)
	jobRepo := repository.NewJobRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)

	pricing := service.NewPricing(cfg)
	sender := service.NewSenderService()
	reservationSvc := service.NewReservationService(reservationRepo, pricing, sender, cfg)
	adminSvc := service.NewAdminService(reservationRepo, cfg)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)

	sessions := dialogue.NewMemorySessionStore()
	machine := dialogue.NewMachine(sessions, reservationSvc)

	jobSvc := service.NewJobService(jobRepo, sessions, cfg.SessionIdleTimeout)

	reservationHandler := api.NewReservationHandler(reservationSvc)
	parseHandler := api.NewParseHandler()
	agentHandler := api.NewVoiceAgentHandler(machine)
	twilioHandler := api.NewTwilioVoiceHandler(machine)
	adminHandler := api.NewAdminHandler(adminSvc, sessions)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/health", reservationHandler.Health).Methods("GET")
	r.HandleFunc("/api/quote", reservationHandler.Quote).Methods("POST")
	r.HandleFunc("/api/reservations", reservationHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations", reservationHandler.ListReservations).Methods("GET")
	r.HandleFunc("/api/parse-arrival", parseHandler.ParseArrival).Methods("POST")
	r.HandleFunc("/api/parse-duration", parseHandler.ParseDuration).Methods("POST")
	r.HandleFunc("/api/parse-email", parseHandler.ParseEmail).Methods("POST")

	// Voice transport endpoints
	r.HandleFunc("/webhook/agent", agentHandler.HandleWebhook).Methods("POST")
	r.HandleFunc("/webhook/twilio/voice", twilioHandler.HandleVoice).Methods("POST")

	// Admin auth (public)
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	r.HandleFunc("/admin/register", adminAuthHandler.CreateUserAdmin).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/reservations", adminHandler.ListReservations).Methods("GET")
	admin.HandleFunc("/reservations/{code}", adminHandler.CancelReservation).Methods("DELETE")
	admin.HandleFunc("/sessions", adminHandler.ListSessions).Methods("GET")

	// Background jobs
	c := cron.New()
	c.AddFunc("@every 10m", func() {
		if err := jobSvc.UpdateFinishedReservations(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.AddFunc("@every 5m", jobSvc.EvictIdleSessions)
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	log.Printf("Server running on port %s (lot %s, capacity %d)", cfg.Port, cfg.LotName, cfg.LotCapacity)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
