package booking

import (
	"context"
	"errors"
	"log"

	"tripma/internal/domain"
	"tripma/internal/kafka"
	"tripma/internal/repository"
)

type BookingUseCase interface {
	// AllBookings returns the full email -> booking list mapping.
	AllBookings(ctx context.Context) (map[string][]domain.BookingRecord, error)
	// AppendBooking inserts the record at the front of the email's list.
	// A duplicate confirmation id for that email is a silent no-op; the
	// record is returned either way so callers see a uniform success.
	AppendBooking(ctx context.Context, email string, rec domain.BookingRecord) (*domain.BookingRecord, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(bookings repository.BookingRepository, producer Producer, bookingTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) AllBookings(ctx context.Context) (map[string][]domain.BookingRecord, error) {
	return s.bookings.All(ctx)
}

func (s *BookingService) AppendBooking(ctx context.Context, email string, rec domain.BookingRecord) (*domain.BookingRecord, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}
	if rec.ID == "" {
		return nil, errors.New("booking id is required")
	}

	inserted, err := s.bookings.Append(ctx, email, rec)
	if err != nil {
		return nil, err
	}
	if inserted {
		if err := s.publish(ctx, "booking_created", email, rec); err != nil {
			log.Printf("WARNING: failed to publish booking_created event for booking %s: %v", rec.ID, err)
		}
	}
	return &rec, nil
}

func (s *BookingService) publish(ctx context.Context, eventType, email string, rec domain.BookingRecord) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:      eventType,
		Email:     email,
		BookingID: rec.ID,
		Passenger: rec.Passenger,
		FlightIDs: rec.FlightIDs,
		Total:     rec.Total,
		Date:      rec.Date,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, rec.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, rec.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
