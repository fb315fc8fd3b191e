package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avelez-dev/agencia-backend/api"
	"github.com/avelez-dev/agencia-backend/config"
	"github.com/avelez-dev/agencia-backend/internal/bootstrap"
	"github.com/avelez-dev/agencia-backend/internal/cache"
	"github.com/avelez-dev/agencia-backend/internal/kafka"
	"github.com/avelez-dev/agencia-backend/internal/repository"
	"github.com/avelez-dev/agencia-backend/internal/service/booking"
	"github.com/avelez-dev/agencia-backend/internal/service/flights"
	"github.com/avelez-dev/agencia-backend/internal/service/hotels"
	"github.com/avelez-dev/agencia-backend/internal/service/passengers"
	"github.com/avelez-dev/agencia-backend/internal/service/rooms"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	catalogTTL := time.Duration(cfg.Cache.CatalogTTLSeconds) * time.Second
	redisCache := cache.NewRedisCache(cfg.Redis, catalogTTL)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	store := repository.NewStore(pool)

	hotelService := hotels.NewHotelService(store, redisCache, logger)
	flightService := flights.NewFlightService(store, redisCache, logger)
	roomService := rooms.NewRoomService(store)
	passengerService := passengers.NewPassengerService(store)
	roomBookingService := booking.NewRoomBookingService(store, producer, cfg.Kafka.BookingTopic, logger)
	flightBookingService := booking.NewFlightBookingService(store, producer, cfg.Kafka.BookingTopic, logger)

	handlers := bootstrap.Handlers{
		Hotels:         api.NewHotelHandler(hotelService),
		Flights:        api.NewFlightHandler(flightService),
		Rooms:          api.NewRoomHandler(roomService),
		Passengers:     api.NewPassengerHandler(passengerService),
		RoomBookings:   api.NewRoomBookingHandler(roomBookingService),
		FlightBookings: api.NewFlightBookingHandler(flightBookingService),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}
