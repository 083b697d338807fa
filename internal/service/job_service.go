package service

import (
	"fmt"
	"log"
	"time"

	"rapidpark/internal/db"
	"rapidpark/internal/repository"
)

// SessionEvictor is implemented by the dialogue session store; the cron job
// uses it to bound how long an abandoned call keeps its session around.
type SessionEvictor interface {
	EvictIdle(olderThan time.Duration) int
}

type JobService struct {
	Repo        *repository.JobRepository
	Sessions    SessionEvictor
	IdleTimeout time.Duration
}

func NewJobService(repo *repository.JobRepository, sessions SessionEvictor, idleTimeout time.Duration) *JobService {
	return &JobService{Repo: repo, Sessions: sessions, IdleTimeout: idleTimeout}
}

// UpdateFinishedReservations finds confirmed reservations past their end
// time and marks them finished.
func (s *JobService) UpdateFinishedReservations() error {
	log.Println("Cron Job: Checking for reservations to mark as 'finished'...")

	reservationIDs, err := s.Repo.GetConfirmedReservationIDsPastEndTime()
	if err != nil {
		return fmt.Errorf("cron job: failed to get confirmed reservations past end time: %w", err)
	}

	if len(reservationIDs) == 0 {
		log.Println("Cron Job: No confirmed reservations found past their end time.")
		return nil
	}

	log.Printf("Cron Job: Found %d reservations to mark as 'finished'. IDs: %v", len(reservationIDs), reservationIDs)

	if err := s.Repo.UpdateReservationStatuses(reservationIDs, db.StatusFinished); err != nil {
		return fmt.Errorf("cron job: failed to update reservation statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d reservations to 'finished'.", len(reservationIDs))
	return nil
}

// EvictIdleSessions drops dialogue sessions with no activity for longer than
// the configured idle timeout. A session holds no reservation state, so
// evicting one can never corrupt the reservation store.
func (s *JobService) EvictIdleSessions() {
	if s.Sessions == nil {
		return
	}
	if evicted := s.Sessions.EvictIdle(s.IdleTimeout); evicted > 0 {
		log.Printf("Cron Job: Evicted %d idle dialogue sessions", evicted)
	}
}
