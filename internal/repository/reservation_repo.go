package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rapidpark/internal/allocator"
	"rapidpark/internal/db"
	apperrors "rapidpark/internal/errors"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(database *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: database}
}

// ListConfirmed returns the (spot, interval) pairs of every confirmed
// reservation in the lot. This is all the allocator needs for a probe.
func (r *ReservationRepository) ListConfirmed(lotName string) ([]db.SpotInterval, error) {
	return listConfirmed(r.DB, lotName)
}

type querier interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

func listConfirmed(q querier, lotName string) ([]db.SpotInterval, error) {
	query := `
		SELECT spot_number, start_time, end_time
		FROM reservations
		WHERE lot_name = $1 AND status = 'confirmed' AND spot_number > 0`
	rows, err := q.Query(query, lotName)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed reservations: %w", err)
	}
	defer rows.Close()

	var intervals []db.SpotInterval
	for rows.Next() {
		var iv db.SpotInterval
		if err := rows.Scan(&iv.SpotNumber, &iv.StartTime, &iv.EndTime); err != nil {
			return nil, fmt.Errorf("error scanning reservation interval: %w", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservation intervals: %w", err)
	}
	return intervals, nil
}

// CreateWithSpot allocates the first free spot and inserts the reservation
// in a single transaction. An advisory lock on the lot name serializes
// concurrent reserves for the same lot, so the check-then-insert pair is
// atomic and two overlapping requests can never share a spot. Returns
// apperrors.ErrNoSpotsAvailable when every spot conflicts.
func (r *ReservationRepository) CreateWithSpot(res *db.Reservation, capacity int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting reservation transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext($1))`, res.LotName); err != nil {
		return fmt.Errorf("error locking lot %q: %w", res.LotName, err)
	}

	existing, err := listConfirmed(tx, res.LotName)
	if err != nil {
		return err
	}

	spot := allocator.FirstFree(capacity, res.StartTime, res.EndTime, existing)
	if spot == 0 {
		return apperrors.ErrNoSpotsAvailable
	}
	res.SpotNumber = spot

	now := time.Now().UTC()
	query := `
		INSERT INTO reservations
		(confirmation_code, customer_name, email, phone, vehicle_reg, vehicle_class,
		 lot_name, spot_number, start_time, end_time, price_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query,
		res.ConfirmationCode,
		res.CustomerName,
		res.Email,
		res.Phone,
		res.VehicleReg,
		res.VehicleClass,
		res.LotName,
		res.SpotNumber,
		res.StartTime,
		res.EndTime,
		res.PriceCents,
		res.Status,
		now,
		now,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing reservation: %w", err)
	}
	return nil
}

// ListRecent returns the newest reservations in the lot, any status.
func (r *ReservationRepository) ListRecent(lotName string, limit int) ([]db.Reservation, error) {
	query := `
		SELECT id, confirmation_code, customer_name, email, phone, vehicle_reg, vehicle_class,
		       lot_name, spot_number, start_time, end_time, price_cents, status, created_at, updated_at
		FROM reservations
		WHERE lot_name = $1
		ORDER BY id DESC
		LIMIT $2`
	rows, err := r.DB.Query(query, lotName, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations: %w", err)
	}
	defer rows.Close()

	var out []db.Reservation
	for rows.Next() {
		var res db.Reservation
		if err := rows.Scan(
			&res.ID, &res.ConfirmationCode, &res.CustomerName, &res.Email, &res.Phone,
			&res.VehicleReg, &res.VehicleClass, &res.LotName, &res.SpotNumber,
			&res.StartTime, &res.EndTime, &res.PriceCents, &res.Status,
			&res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservations: %w", err)
	}
	return out, nil
}

// ListPage returns a page of reservations, newest first, for the admin view.
func (r *ReservationRepository) ListPage(lotName string, limit, offset int) ([]db.Reservation, error) {
	query := `
		SELECT id, confirmation_code, customer_name, email, phone, vehicle_reg, vehicle_class,
		       lot_name, spot_number, start_time, end_time, price_cents, status, created_at, updated_at
		FROM reservations
		WHERE lot_name = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.DB.Query(query, lotName, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying reservation page: %w", err)
	}
	defer rows.Close()

	var out []db.Reservation
	for rows.Next() {
		var res db.Reservation
		if err := rows.Scan(
			&res.ID, &res.ConfirmationCode, &res.CustomerName, &res.Email, &res.Phone,
			&res.VehicleReg, &res.VehicleClass, &res.LotName, &res.SpotNumber,
			&res.StartTime, &res.EndTime, &res.PriceCents, &res.Status,
			&res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservation page: %w", err)
	}
	return out, nil
}

// CountByLot returns the total number of reservations for admin paging.
func (r *ReservationRepository) CountByLot(lotName string) (int64, error) {
	var total int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM reservations WHERE lot_name = $1`, lotName).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error counting reservations: %w", err)
	}
	return total, nil
}

// CancelByCode flips a confirmed reservation to cancelled. Cancelled rows no
// longer count toward allocation.
func (r *ReservationRepository) CancelByCode(code string) error {
	query := `UPDATE reservations SET status = 'cancelled', updated_at = NOW()
		WHERE confirmation_code = $1 AND status = 'confirmed'`
	result, err := r.DB.Exec(query, code)
	if err != nil {
		return fmt.Errorf("error cancelling reservation %s: %w", code, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking cancel result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("reservation with code '%s' not found or not confirmed: %w", code, sql.ErrNoRows)
	}
	return nil
}

// IsNotFound reports whether err means no matching reservation row.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
