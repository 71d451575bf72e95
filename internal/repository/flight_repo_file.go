package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"tripma/internal/domain"
)

var ErrFlightNotFound = errors.New("flight not found")

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	// Search filters by case-insensitive substring match on origin and
	// destination code/city. An empty term matches everything.
	Search(ctx context.Context, from, to string) ([]domain.Flight, error)
}

// FileFlightRepository serves the static flight catalog, loaded once from the
// JSON fixture at construction.
type FileFlightRepository struct {
	flights []domain.Flight
	byID    map[string]domain.Flight
}

func NewFlightRepository(path string) (*FileFlightRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flights fixture: %w", err)
	}
	var flights []domain.Flight
	if err := json.Unmarshal(raw, &flights); err != nil {
		return nil, fmt.Errorf("parse flights fixture: %w", err)
	}
	return NewStaticFlightRepository(flights), nil
}

func NewStaticFlightRepository(flights []domain.Flight) *FileFlightRepository {
	byID := make(map[string]domain.Flight, len(flights))
	for _, f := range flights {
		byID[f.ID] = f
	}
	return &FileFlightRepository{flights: flights, byID: byID}
}

func (r *FileFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	return r.flights, nil
}

func (r *FileFlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, ErrFlightNotFound
	}
	return &f, nil
}

func (r *FileFlightRepository) Search(ctx context.Context, from, to string) ([]domain.Flight, error) {
	from = strings.ToLower(from)
	to = strings.ToLower(to)

	matched := make([]domain.Flight, 0)
	for _, f := range r.flights {
		if matchesAirport(f.Origin, from) && matchesAirport(f.Destination, to) {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

func matchesAirport(a domain.Airport, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Code), term) ||
		strings.Contains(strings.ToLower(a.City), term)
}

var _ FlightRepository = (*FileFlightRepository)(nil)
