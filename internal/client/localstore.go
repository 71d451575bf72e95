package client

import (
	"encoding/json"
	"os"
	"sync"

	"tripma/internal/domain"
)

// LocalStore is the client-side mirror of the server's booking mapping: the
// same email -> list shape, written optimistically at confirmation time so
// the user sees the new booking even when the API sync fails. It plays the
// role a browser localStorage entry would.
type LocalStore struct {
	path string
	mu   sync.Mutex
}

func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

// Bookings returns the mirrored list for the email. An unavailable or
// unreadable mirror reads as empty, never an error.
func (s *LocalStore) Bookings(email string) []domain.BookingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()[email]
}

// Add prepends the record to the email's list unless an entry with the same
// confirmation id is already mirrored. Reports whether an insert happened.
func (s *LocalStore) Add(email string, rec domain.BookingRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	for _, existing := range data[email] {
		if existing.ID == rec.ID {
			return false, nil
		}
	}
	data[email] = append([]domain.BookingRecord{rec}, data[email]...)

	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return false, err
	}
	return true, nil
}

func (s *LocalStore) load() map[string][]domain.BookingRecord {
	data := make(map[string][]domain.BookingRecord)
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return data
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return make(map[string][]domain.BookingRecord)
	}
	return data
}
