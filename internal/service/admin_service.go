package service

import (
	"fmt"

	"rapidpark/internal/config"
	"rapidpark/internal/entities"
	"rapidpark/internal/repository"
)

// AdminService backs the protected reservation-management endpoints.
type AdminService struct {
	Repo    *repository.ReservationRepository
	lotName string
}

func NewAdminService(repo *repository.ReservationRepository, cfg *config.Config) *AdminService {
	return &AdminService{Repo: repo, lotName: cfg.LotName}
}

func (s *AdminService) ListReservations(limit, offset int) (*entities.ReservationsList, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	total, err := s.Repo.CountByLot(s.lotName)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	rows, err := s.Repo.ListPage(s.lotName, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}

	list := &entities.ReservationsList{
		Total:        total,
		Limit:        limit,
		Offset:       offset,
		Reservations: make([]entities.ReservationResponse, 0, len(rows)),
	}
	for i := range rows {
		list.Reservations = append(list.Reservations, *toResponse(&rows[i]))
	}
	return list, nil
}

// CancelReservation moves a confirmed reservation to cancelled; the spot
// frees up for the interval immediately.
func (s *AdminService) CancelReservation(code string) error {
	return s.Repo.CancelByCode(code)
}
