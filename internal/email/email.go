package email

import (
	"context"
	"fmt"

	"tripma/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

// Send delivers the booking confirmation copy the success page promises.
// The demo sender just prints; swapping in SMTP stays behind this method.
func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send confirmation %s to %s: passenger %s, %d flight(s), total $%d\n",
		event.BookingID, event.Email, event.Passenger, len(event.FlightIDs), event.Total)
	return nil
}
