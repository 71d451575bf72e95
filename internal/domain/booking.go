package domain

import (
	"encoding/hex"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "Upcoming"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// BookingRecord is one confirmed trip purchase, keyed by a confirmation id and
// owned by one email. Records are created once at checkout and never mutated.
// Flights is the denormalized form written by the client; server-side storage
// keeps only FlightIDs and the history view hydrates them on read.
type BookingRecord struct {
	ID        string        `json:"id"`
	Date      string        `json:"date"`
	Status    BookingStatus `json:"status"`
	FlightIDs []string      `json:"flightIds"`
	Flights   []Flight      `json:"flights,omitempty"`
	Total     int           `json:"total"`
	Passenger string        `json:"passenger"`
}

// BookingDateLayout is the human-readable layout bookings are stamped with,
// e.g. "Feb 25, 2024".
const BookingDateLayout = "Jan 2, 2006"

// taxAndFeeRate is the fixed surcharge applied on top of the flight subtotal.
const taxAndFeeRate = 0.12

// fallbackPrice covers fixture records with no price set.
const fallbackPrice = 500

// ComputeTotal returns the booking total for the given flights: the price
// subtotal plus the fixed 12% taxes-and-fees surcharge, rounded.
func ComputeTotal(flights []Flight) int {
	subtotal := 0
	for _, f := range flights {
		price := f.Price
		if price == 0 {
			price = fallbackPrice
		}
		subtotal += price
	}
	return subtotal + int(math.Round(float64(subtotal)*taxAndFeeRate))
}

// NewConfirmationID returns a "#"-prefixed 12-character confirmation code.
// Derived from a UUID rather than math/rand so a reloaded checkout cannot
// collide with an existing booking.
func NewConfirmationID() string {
	u := uuid.New()
	return "#" + strings.ToUpper(hex.EncodeToString(u[:6]))
}

// NewBookingRecord assembles an Upcoming booking stamped with today's date.
// flightIDs is kept verbatim; flights carries only the ids that resolved
// against the catalog and drives the total.
func NewBookingRecord(passenger string, flightIDs []string, flights []Flight) BookingRecord {
	return BookingRecord{
		ID:        NewConfirmationID(),
		Date:      time.Now().Format(BookingDateLayout),
		Status:    BookingStatusUpcoming,
		FlightIDs: flightIDs,
		Flights:   flights,
		Total:     ComputeTotal(flights),
		Passenger: passenger,
	}
}
