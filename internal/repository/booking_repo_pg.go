package repository

import (
	"context"
	"encoding/json"

	"tripma/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGBookingRepository is the alternative storage driver for deployments that
// outgrow the flat file: one row per (email, confirmation id) with the record
// stored as jsonb. Per-key inserts are atomic, so no process-level mutex is
// needed and concurrent appends cannot clobber each other.
type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewPGBookingRepository(db *pgxpool.Pool) *PGBookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) All(ctx context.Context) (map[string][]domain.BookingRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT email, record FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	data := make(map[string][]domain.BookingRecord)
	for rows.Next() {
		var email string
		var raw []byte
		if err := rows.Scan(&email, &raw); err != nil {
			return nil, err
		}
		var rec domain.BookingRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		data[email] = append(data[email], rec)
	}
	return data, rows.Err()
}

func (r *PGBookingRepository) ForEmail(ctx context.Context, email string) ([]domain.BookingRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT record FROM bookings WHERE email=$1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.BookingRecord
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var rec domain.BookingRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PGBookingRepository) Append(ctx context.Context, email string, rec domain.BookingRecord) (bool, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return false, err
	}
	cmd, err := r.db.Exec(ctx, `INSERT INTO bookings (email, confirmation_id, record)
		VALUES ($1, $2, $3)
		ON CONFLICT (email, confirmation_id) DO NOTHING`, email, rec.ID, raw)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
