package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripma/config"
	"tripma/internal/bootstrap"
	"tripma/internal/cache"
	"tripma/internal/kafka"
	"tripma/internal/repository"
	"tripma/internal/service/auth"
	"tripma/internal/service/booking"
	"tripma/internal/service/flights"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	flightRepo, err := repository.NewFlightRepository(cfg.Storage.FlightsPath)
	if err != nil {
		log.Fatalf("load flight catalog: %v", err)
	}
	userRepo := repository.NewFileUserRepository(cfg.Storage.UsersPath)

	var bookingRepo repository.BookingRepository
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		bookingRepo = repository.NewPGBookingRepository(pool)
	default:
		bookingRepo = repository.NewFileBookingRepository(cfg.Storage.BookingsPath)
	}

	var flightsCache flights.Cache
	if cfg.Redis.Addr != "" {
		flightsCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	}

	var producer booking.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		p := kafka.NewProducer(cfg.Kafka.Brokers)
		defer p.Close()
		producer = p
	}

	flightService := flights.NewFlightService(flightRepo, flightsCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	authService := auth.NewAuthService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService, authService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
