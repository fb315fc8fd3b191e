package booking

import (
	"context"
	"time"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/kafka"
	"github.com/avelez-dev/agencia-backend/internal/pricing"
	"github.com/avelez-dev/agencia-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type FlightBookingUseCase interface {
	Create(ctx context.Context, input FlightBookingInput) (*FlightBookingResult, error)
	Edit(ctx context.Context, id int64, input FlightBookingInput) (*FlightBookingResult, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*FlightBookingResult, error)
	List(ctx context.Context) ([]FlightBookingResult, error)
}

type FlightBookingInput struct {
	Date          time.Time
	Origin        string
	Destination   string
	PeopleQ       int
	TouristSeats  int
	BusinessSeats int
	PassengerIDs  []int64
}

type FlightBookingResult struct {
	ID            int64
	Code          string
	FlightID      int64
	FlightNumber  string
	FlightName    string
	Date          time.Time
	PeopleQ       int
	TouristSeats  int
	BusinessSeats int
	PassengerIDs  []int64
	TotalCost     float64
}

// FlightBookingService is the transactional use case for flight bookings.
// Seats are claimed by an atomic conditional decrement on the flight's
// per-class counters; a failed booking leaves both counters untouched.
type FlightBookingService struct {
	store    repository.Store
	producer Producer
	topic    string
	logger   *logrus.Logger
}

func NewFlightBookingService(store repository.Store, producer Producer, topic string, logger *logrus.Logger) *FlightBookingService {
	return &FlightBookingService{store: store, producer: producer, topic: topic, logger: logger}
}

func (s *FlightBookingService) Create(ctx context.Context, input FlightBookingInput) (*FlightBookingResult, error) {
	var result *FlightBookingResult
	err := s.store.WithTx(ctx, func(repos repository.Repositories) error {
		booking := &domain.FlightBooking{Code: uuid.NewString()}
		var err error
		result, err = s.apply(ctx, repos, booking, input, true)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.logger, s.producer, s.topic, kafka.EventBookingCreated, kafka.KindFlightBooking, result.ID, result.Code, result.TotalCost)
	return result, nil
}

// Edit restores the existing booking's exact seat split to its flight, then
// re-runs the create path with the new parameters against the same identity.
func (s *FlightBookingService) Edit(ctx context.Context, id int64, input FlightBookingInput) (*FlightBookingResult, error) {
	var result *FlightBookingResult
	err := s.store.WithTx(ctx, func(repos repository.Repositories) error {
		existing, err := repos.FlightBookings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.revert(ctx, repos, existing); err != nil {
			return err
		}
		result, err = s.apply(ctx, repos, existing, input, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.logger, s.producer, s.topic, kafka.EventBookingUpdated, kafka.KindFlightBooking, result.ID, result.Code, result.TotalCost)
	return result, nil
}

func (s *FlightBookingService) Delete(ctx context.Context, id int64) error {
	var code string
	err := s.store.WithTx(ctx, func(repos repository.Repositories) error {
		existing, err := repos.FlightBookings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		code = existing.Code
		if err := s.revert(ctx, repos, existing); err != nil {
			return err
		}
		return repos.FlightBookings.Delete(ctx, existing.ID)
	})
	if err != nil {
		return err
	}

	publishEvent(ctx, s.logger, s.producer, s.topic, kafka.EventBookingCancelled, kafka.KindFlightBooking, id, code, 0)
	return nil
}

func (s *FlightBookingService) Get(ctx context.Context, id int64) (*FlightBookingResult, error) {
	repos := s.store.Repos()
	booking, err := repos.FlightBookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.result(ctx, repos, booking)
}

func (s *FlightBookingService) List(ctx context.Context) ([]FlightBookingResult, error) {
	repos := s.store.Repos()
	bookings, err := repos.FlightBookings.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]FlightBookingResult, 0, len(bookings))
	for i := range bookings {
		r, err := s.result(ctx, repos, &bookings[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, nil
}

// apply runs the shared create path: validate passengers, select a flight,
// check and take seats, persist, link passengers, price.
func (s *FlightBookingService) apply(ctx context.Context, repos repository.Repositories, booking *domain.FlightBooking, input FlightBookingInput, isNew bool) (*FlightBookingResult, error) {
	if err := validateFlightBookingInput(input); err != nil {
		return nil, err
	}
	if err := validatePassengers(ctx, repos, input.PassengerIDs); err != nil {
		return nil, err
	}

	flight, err := selectFlight(ctx, repos, input.Date, input.Origin, input.Destination)
	if err != nil {
		return nil, err
	}

	if flight.EconomySeatsQ < input.TouristSeats {
		return nil, &domain.InsufficientInventoryError{
			Resource:  "economy seats",
			Place:     flight.FlightNumber,
			Requested: input.TouristSeats,
			Available: flight.EconomySeatsQ,
		}
	}
	if flight.BusinessSeatsQ < input.BusinessSeats {
		return nil, &domain.InsufficientInventoryError{
			Resource:  "business seats",
			Place:     flight.FlightNumber,
			Requested: input.BusinessSeats,
			Available: flight.BusinessSeatsQ,
		}
	}

	booking.FlightID = flight.ID
	booking.Date = input.Date
	booking.PeopleQ = input.PeopleQ
	booking.TouristSeats = input.TouristSeats
	booking.BusinessSeats = input.BusinessSeats
	booking.PassengerIDs = input.PassengerIDs
	if isNew {
		err = repos.FlightBookings.Create(ctx, booking)
	} else {
		err = repos.FlightBookings.Update(ctx, booking)
	}
	if err != nil {
		return nil, err
	}

	// The conditional decrement is the claim; it guards against a concurrent
	// booking draining the seats between the check above and here.
	if err := repos.Flights.DecrementSeats(ctx, flight.ID, input.TouristSeats, input.BusinessSeats); err != nil {
		return nil, err
	}

	for _, pid := range input.PassengerIDs {
		if err := repos.Passengers.SetFlightBooking(ctx, pid, &booking.ID); err != nil {
			return nil, err
		}
	}

	return &FlightBookingResult{
		ID:            booking.ID,
		Code:          booking.Code,
		FlightID:      flight.ID,
		FlightNumber:  flight.FlightNumber,
		FlightName:    flight.Name,
		Date:          input.Date,
		PeopleQ:       input.PeopleQ,
		TouristSeats:  input.TouristSeats,
		BusinessSeats: input.BusinessSeats,
		PassengerIDs:  input.PassengerIDs,
		TotalCost:     pricing.FlightBookingTotal(flight, input.TouristSeats, input.BusinessSeats),
	}, nil
}

// revert returns the booking's recorded seat split to its flight and unlinks
// its passengers. The increment is not clamped to the flight's capacity.
func (s *FlightBookingService) revert(ctx context.Context, repos repository.Repositories, booking *domain.FlightBooking) error {
	if err := repos.Flights.IncrementSeats(ctx, booking.FlightID, booking.TouristSeats, booking.BusinessSeats); err != nil {
		return err
	}
	return repos.Passengers.UnlinkFlightBooking(ctx, booking.ID)
}

func (s *FlightBookingService) result(ctx context.Context, repos repository.Repositories, booking *domain.FlightBooking) (*FlightBookingResult, error) {
	flight, err := repos.Flights.GetByID(ctx, booking.FlightID)
	if err != nil {
		return nil, err
	}
	passengerIDs, err := repos.Passengers.ListIDsByFlightBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	return &FlightBookingResult{
		ID:            booking.ID,
		Code:          booking.Code,
		FlightID:      flight.ID,
		FlightNumber:  flight.FlightNumber,
		FlightName:    flight.Name,
		Date:          booking.Date,
		PeopleQ:       booking.PeopleQ,
		TouristSeats:  booking.TouristSeats,
		BusinessSeats: booking.BusinessSeats,
		PassengerIDs:  passengerIDs,
		TotalCost:     pricing.FlightBookingTotal(flight, booking.TouristSeats, booking.BusinessSeats),
	}, nil
}

func validateFlightBookingInput(input FlightBookingInput) error {
	if input.TouristSeats < 0 || input.BusinessSeats < 0 {
		return domain.NewValidationError("seat counts must not be negative")
	}
	if input.TouristSeats == 0 && input.BusinessSeats == 0 {
		return domain.NewValidationError("at least one seat must be requested")
	}
	if input.Origin == "" || input.Destination == "" {
		return domain.NewValidationError("origin and destination are required")
	}
	return nil
}

var _ FlightBookingUseCase = (*FlightBookingService)(nil)
