package repository

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"tripma/internal/domain"
)

// BookingRepository holds the email -> booking list mapping. Lists are kept
// most-recent-first: Append prepends.
type BookingRepository interface {
	// All returns the entire mapping.
	All(ctx context.Context) (map[string][]domain.BookingRecord, error)
	// ForEmail returns the list for one email, empty if the email is unknown.
	ForEmail(ctx context.Context, email string) ([]domain.BookingRecord, error)
	// Append inserts the record at the front of the email's list. A record
	// with the same id already present for that email is a silent no-op;
	// the bool reports whether an insert actually happened.
	Append(ctx context.Context, email string, rec domain.BookingRecord) (bool, error)
}

// FileBookingRepository persists the whole mapping as one JSON document on
// disk, one flat document holding every email's list. A missing or unparseable file
// reads as an empty mapping; read failures never surface to callers. Every
// write replaces the file wholesale, so all read-modify-write cycles are
// serialized behind a single mutex; without it two concurrent appends would
// each load the pre-write state and the second flush would drop the first.
type FileBookingRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileBookingRepository(path string) *FileBookingRepository {
	return &FileBookingRepository{path: path}
}

func (r *FileBookingRepository) All(ctx context.Context) (map[string][]domain.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *FileBookingRepository) ForEmail(ctx context.Context, email string) ([]domain.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()[email], nil
}

func (r *FileBookingRepository) Append(ctx context.Context, email string, rec domain.BookingRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.load()
	for _, existing := range data[email] {
		if existing.ID == rec.ID {
			return false, nil
		}
	}
	data[email] = append([]domain.BookingRecord{rec}, data[email]...)

	if err := r.save(data); err != nil {
		return false, err
	}
	return true, nil
}

// load absorbs every read error into an empty mapping, per the store contract.
func (r *FileBookingRepository) load() map[string][]domain.BookingRecord {
	data := make(map[string][]domain.BookingRecord)
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return data
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return make(map[string][]domain.BookingRecord)
	}
	return data
}

func (r *FileBookingRepository) save(data map[string][]domain.BookingRecord) error {
	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, raw, 0644)
}

var _ BookingRepository = (*FileBookingRepository)(nil)
