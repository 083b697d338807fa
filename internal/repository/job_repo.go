package repository

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetConfirmedReservationIDsPastEndTime finds confirmed reservations whose
// end time has already passed.
func (r *JobRepository) GetConfirmedReservationIDsPastEndTime() ([]int, error) {
	query := `SELECT id FROM reservations WHERE status = 'confirmed' AND end_time < NOW()`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed reservations past end time: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning reservation ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateReservationStatuses moves a batch of reservations to newStatus.
func (r *JobRepository) UpdateReservationStatuses(ids []int, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating reservation statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Updated status for %d reservations to '%s'", rowsAffected, newStatus)
	}
	return nil
}
