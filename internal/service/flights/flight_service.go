package flights

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/repository"
	"github.com/sirupsen/logrus"
)

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightUseCase interface {
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	Edit(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error)
	Get(ctx context.Context, id int64) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	Deactivate(ctx context.Context, id int64) error
}

type FlightInput struct {
	Name              string
	FlightNumber      string
	Origin            string
	Destination       string
	EconomySeatsQ     int
	BusinessSeatsQ    int
	EconomySeatPrice  float64
	BusinessSeatPrice float64
	DateFrom          time.Time
	DateTo            time.Time
}

type FlightService struct {
	store  repository.Store
	cache  Cache
	logger *logrus.Logger
}

func NewFlightService(store repository.Store, cache Cache, logger *logrus.Logger) *FlightService {
	return &FlightService{store: store, cache: cache, logger: logger}
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	if err := validateFlightInput(input); err != nil {
		return nil, err
	}

	repos := s.store.Repos()
	if _, err := repos.Flights.GetByNumber(ctx, input.FlightNumber); err == nil {
		return nil, domain.ErrDuplicateCode
	} else if !errors.Is(err, domain.ErrFlightNotFound) {
		return nil, err
	}

	flight := &domain.Flight{
		Name:              input.Name,
		FlightNumber:      input.FlightNumber,
		Origin:            input.Origin,
		Destination:       input.Destination,
		EconomySeatsQ:     input.EconomySeatsQ,
		BusinessSeatsQ:    input.BusinessSeatsQ,
		EconomySeatPrice:  input.EconomySeatPrice,
		BusinessSeatPrice: input.BusinessSeatPrice,
		Active:            true,
		DateFrom:          input.DateFrom,
		DateTo:            input.DateTo,
	}
	if err := repos.Flights.Create(ctx, flight); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) Edit(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error) {
	if err := validateFlightInput(input); err != nil {
		return nil, err
	}

	repos := s.store.Repos()
	flight, err := repos.Flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !flight.Active {
		return nil, domain.ErrFlightInactive
	}

	if other, err := repos.Flights.GetByNumber(ctx, input.FlightNumber); err == nil && other.ID != id {
		return nil, domain.ErrDuplicateCode
	} else if err != nil && !errors.Is(err, domain.ErrFlightNotFound) {
		return nil, err
	}

	flight.Name = input.Name
	flight.FlightNumber = input.FlightNumber
	flight.Origin = input.Origin
	flight.Destination = input.Destination
	flight.EconomySeatsQ = input.EconomySeatsQ
	flight.BusinessSeatsQ = input.BusinessSeatsQ
	flight.EconomySeatPrice = input.EconomySeatPrice
	flight.BusinessSeatPrice = input.BusinessSeatPrice
	flight.DateFrom = input.DateFrom
	flight.DateTo = input.DateTo
	if err := repos.Flights.Update(ctx, flight); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) Get(ctx context.Context, id int64) (*domain.Flight, error) {
	flight, err := s.store.Repos().Flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !flight.Active {
		return nil, domain.ErrFlightNotFound
	}
	return flight, nil
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.store.Repos().Flights.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.logger.WithError(err).Warn("failed to cache flight listing")
		}
	}
	return flights, nil
}

// Deactivate soft-deletes the flight. Forbidden while bookings reference it;
// the check and the flag flip share one transaction.
func (s *FlightService) Deactivate(ctx context.Context, id int64) error {
	err := s.store.WithTx(ctx, func(repos repository.Repositories) error {
		outstanding, err := repos.FlightBookings.CountByFlight(ctx, id)
		if err != nil {
			return err
		}
		if outstanding > 0 {
			return domain.ErrFlightHasBookings
		}
		return repos.Flights.Deactivate(ctx, id)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate flight cache")
	}
}

func validateFlightInput(input FlightInput) error {
	if strings.TrimSpace(input.FlightNumber) == "" || strings.TrimSpace(input.Origin) == "" || strings.TrimSpace(input.Destination) == "" {
		return domain.NewValidationError("flight number, origin and destination are required")
	}
	if input.EconomySeatsQ < 0 || input.BusinessSeatsQ < 0 {
		return domain.NewValidationError("seat counts must not be negative")
	}
	if input.EconomySeatPrice < 0 || input.BusinessSeatPrice < 0 {
		return domain.NewValidationError("seat prices must not be negative")
	}
	return nil
}

var _ FlightUseCase = (*FlightService)(nil)
