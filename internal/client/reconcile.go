package client

import (
	"context"

	"tripma/internal/domain"
	"tripma/internal/repository"
)

// Reconcile merges the local mirror with the server copy into one
// display-ready list: local first, then server, deduplicated by confirmation
// id keeping the first occurrence. On an id collision the local copy wins.
// First-occurrence order is preserved; neither input is modified.
func Reconcile(local, server []domain.BookingRecord) []domain.BookingRecord {
	merged := make([]domain.BookingRecord, 0, len(local)+len(server))
	seen := make(map[string]struct{}, len(local)+len(server))

	for _, list := range [][]domain.BookingRecord{local, server} {
		for _, rec := range list {
			if _, ok := seen[rec.ID]; ok {
				continue
			}
			seen[rec.ID] = struct{}{}
			merged = append(merged, rec)
		}
	}
	return merged
}

// Hydrate fills in the denormalized Flights of a server record that stores
// only flight ids. Ids that do not resolve against the catalog are dropped.
// Records already carrying flights pass through unchanged.
func Hydrate(ctx context.Context, rec domain.BookingRecord, catalog repository.FlightRepository) domain.BookingRecord {
	if len(rec.Flights) > 0 {
		return rec
	}

	flights := make([]domain.Flight, 0, len(rec.FlightIDs))
	for _, id := range rec.FlightIDs {
		f, err := catalog.GetByID(ctx, id)
		if err != nil {
			continue
		}
		flights = append(flights, *f)
	}
	rec.Flights = flights
	return rec
}
