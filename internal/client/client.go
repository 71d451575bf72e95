package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"tripma/internal/domain"
	"tripma/internal/repository"
)

// Client reproduces the browser-side booking flow: the confirmation page's
// optimistic local save with a best-effort server sync, and the history
// page's fetch-hydrate-merge read path.
type Client struct {
	baseURL string
	http    *http.Client
	local   *LocalStore
	catalog repository.FlightRepository
}

func New(baseURL string, local *LocalStore, catalog repository.FlightRepository) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		local:   local,
		catalog: catalog,
	}
}

type appendRequest struct {
	Email   string               `json:"email"`
	Booking domain.BookingRecord `json:"booking"`
}

// Confirm runs the checkout confirmation: synthesize a confirmation id,
// resolve the selected flights and compute the total, mirror the booking
// locally, then sync it to the server. The sync is fire-and-forget, so a
// failure is logged and the locally saved booking is still returned.
func (c *Client) Confirm(ctx context.Context, email, passenger string, flightIDs []string) (*domain.BookingRecord, error) {
	flights := make([]domain.Flight, 0, len(flightIDs))
	for _, id := range flightIDs {
		f, err := c.catalog.GetByID(ctx, id)
		if err != nil {
			continue
		}
		flights = append(flights, *f)
	}

	rec := domain.NewBookingRecord(passenger, flightIDs, flights)
	if _, err := c.local.Add(email, rec); err != nil {
		return nil, err
	}

	if err := c.push(ctx, email, rec); err != nil {
		log.Printf("failed to save booking to server: %v", err)
	}
	return &rec, nil
}

// History builds the deduplicated booking list for the email from both
// sources. Server fetch failures degrade to a locally-only list; the merge
// never writes back to either store.
func (c *Client) History(ctx context.Context, email string) ([]domain.BookingRecord, error) {
	server := make([]domain.BookingRecord, 0)
	for _, rec := range c.fetch(ctx)[email] {
		server = append(server, Hydrate(ctx, rec, c.catalog))
	}

	local := c.local.Bookings(email)
	return Reconcile(local, server), nil
}

func (c *Client) push(ctx context.Context, email string, rec domain.BookingRecord) error {
	body, err := json.Marshal(appendRequest{Email: email, Booking: rec})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

// fetch returns the full server mapping, or an empty one on any failure.
func (c *Client) fetch(ctx context.Context) map[string][]domain.BookingRecord {
	data := make(map[string][]domain.BookingRecord)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/bookings", nil)
	if err != nil {
		return data
	}
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("failed to fetch bookings: %v", err)
		return data
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("failed to decode bookings: %v", err)
		return make(map[string][]domain.BookingRecord)
	}
	return data
}
