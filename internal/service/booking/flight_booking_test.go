package booking

import (
	"context"
	"testing"
	"time"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var travelDate = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

func madridBarcelona() domain.Flight {
	return domain.Flight{
		ID:                7,
		Name:              "Iberia morning",
		FlightNumber:      "IB1234",
		Origin:            "Madrid",
		Destination:       "Barcelona",
		EconomySeatsQ:     5,
		BusinessSeatsQ:    2,
		EconomySeatPrice:  50,
		BusinessSeatPrice: 200,
		Active:            true,
		DateFrom:          travelDate,
	}
}

func TestFlightBookingService_Create_Success(t *testing.T) {
	m := newMockRepos()
	service := NewFlightBookingService(m.store(), nil, "", logrus.New())
	ctx := context.Background()

	input := FlightBookingInput{
		Date:          travelDate,
		Origin:        "Madrid",
		Destination:   "Barcelona",
		PeopleQ:       3,
		TouristSeats:  2,
		BusinessSeats: 1,
		PassengerIDs:  []int64{1, 2, 3},
	}

	m.passengers.On("ExistsByID", ctx, int64(1)).Return(true, nil).Once()
	m.passengers.On("ExistsByID", ctx, int64(2)).Return(true, nil).Once()
	m.passengers.On("ExistsByID", ctx, int64(3)).Return(true, nil).Once()

	m.flights.On("FindByDate", ctx, travelDate).Return([]domain.Flight{madridBarcelona()}, nil).Once()

	m.flightBookings.On("Create", ctx, mock.AnythingOfType("*domain.FlightBooking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.FlightBooking).ID = 55
		}).Return(nil).Once()

	m.flights.On("DecrementSeats", ctx, int64(7), 2, 1).Return(nil).Once()

	m.passengers.On("SetFlightBooking", ctx, int64(1), bookingIDPtr(55)).Return(nil).Once()
	m.passengers.On("SetFlightBooking", ctx, int64(2), bookingIDPtr(55)).Return(nil).Once()
	m.passengers.On("SetFlightBooking", ctx, int64(3), bookingIDPtr(55)).Return(nil).Once()

	result, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, int64(55), result.ID)
	assert.Equal(t, int64(7), result.FlightID)
	assert.Equal(t, "IB1234", result.FlightNumber)
	assert.Equal(t, 2, result.TouristSeats)
	assert.Equal(t, 1, result.BusinessSeats)
	assert.Equal(t, 50.0*2+200.0*1, result.TotalCost)

	m.flights.AssertExpectations(t)
	m.flightBookings.AssertExpectations(t)
	m.passengers.AssertExpectations(t)
}

// The route matches in either direction, so the return leg books against the
// same flight row.
func TestFlightBookingService_Create_ReversedRoute(t *testing.T) {
	m := newMockRepos()
	service := NewFlightBookingService(m.store(), nil, "", logrus.New())
	ctx := context.Background()

	input := FlightBookingInput{
		Date:         travelDate,
		Origin:       "barcelona",
		Destination:  "MADRID",
		PeopleQ:      1,
		TouristSeats: 1,
		PassengerIDs: []int64{1},
	}

	m.passengers.On("ExistsByID", ctx, int64(1)).Return(true, nil).Once()
	m.flights.On("FindByDate", ctx, travelDate).Return([]domain.Flight{madridBarcelona()}, nil).Once()
	m.flightBookings.On("Create", ctx, mock.AnythingOfType("*domain.FlightBooking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.FlightBooking).ID = 56
		}).Return(nil).Once()
	m.flights.On("DecrementSeats", ctx, int64(7), 1, 0).Return(nil).Once()
	m.passengers.On("SetFlightBooking", ctx, int64(1), bookingIDPtr(56)).Return(nil).Once()

	result, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), result.FlightID)
}

func TestFlightBookingService_Create_NoFlightOnDate(t *testing.T) {
	m := newMockRepos()
	service := NewFlightBookingService(m.store(), nil, "", logrus.New())
	ctx := context.Background()

	m.passengers.On("ExistsByID", ctx, int64(1)).Return(true, nil).Once()
	m.flights.On("FindByDate", ctx, travelDate).Return([]domain.Flight{}, nil).Once()

	result, err := service.Create(ctx, FlightBookingInput{
		Date:         travelDate,
		Origin:       "Madrid",
		Destination:  "Barcelona",
		TouristSeats: 1,
		PassengerIDs: []int64{1},
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNoFlightOnDate)
}

func TestFlightBookingService_Create_RouteMismatch(t *testing.T) {
	m := newMockRepos()
	service := NewFlightBookingService(m.store(), nil, "", logrus.New())
	ctx := context.Background()

	m.passengers.On("ExistsByID", ctx, int64(1)).Return(true, nil).Once()
	m.flights.On("FindByDate", ctx, travelDate).Return([]domain.Flight{madridBarcelona()}, nil).Once()

	result, err := service.Create(ctx, FlightBookingInput{
		Date:         travelDate,
		Origin:       "Madrid",
		Destination:  "Sevilla",
		TouristSeats: 1,
		PassengerIDs: []int64{1},
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrRouteMismatch)
	m.flights.AssertNotCalled(t, "DecrementSeats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// A seat shortage must fail before the booking row is written and before any
// counter moves.
func TestFlightBookingService_Create_InsufficientSeats(t *testing.T) {
	m := newMockRepos()
	service := NewFlightBookingService(m.store(), nil, "", logrus.New())
	ctx := context.Background()

	m.passengers.On("ExistsByID", ctx, int64(1)).Return(true, nil).Once()
	m.flights.On("FindByDate", ctx, travelDate).Return([]domain.Flight{madridBarcelona()}, nil).Once()

	result, err := service.Create(ctx, FlightBookingInput{
		Date:          travelDate,
		Origin:        "Madrid",
		Destination:   "Barcelona",
		TouristSeats:  1,
		BusinessSeats: 3,
		PassengerIDs:  []int64{1},
	})

	assert.Nil(t, result)
	var invErr *domain.InsufficientInventoryError
	assert.ErrorAs(t, err, &invErr)
	assert.Equal(t, "business seats", invErr.Resource)
	assert.Equal(t, "IB1234", invErr.Place)
	assert.Equal(t, 3, invErr.Requested)
	assert.Equal(t, 2, invErr.Available)

	m.flightBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.flights.AssertNotCalled(t, "DecrementSeats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightBookingService_Create_Validation(t *testing.T) {
	m := newMockRepos()
	service := NewFlightBookingService(m.store(), nil, "", logrus.New())
	ctx := context.Background()

	tests := []struct {
		name  string
		input FlightBookingInput
	}{
		{
			name:  "no seats requested",
			input: FlightBookingInput{Date: travelDate, Origin: "Madrid", Destination: "Barcelona", PassengerIDs: []int64{1}},
		},
		{
			name:  "negative seats",
			input: FlightBookingInput{Date: travelDate, Origin: "Madrid", Destination: "Barcelona", TouristSeats: -1, BusinessSeats: 2, PassengerIDs: []int64{1}},
		},
		{
			name:  "missing route",
			input: FlightBookingInput{Date: travelDate, TouristSeats: 1, PassengerIDs: []int64{1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Create(ctx, tt.input)
			assert.Nil(t, result)
			var valErr *domain.ValidationError
			assert.ErrorAs(t, err, &valErr)
		})
	}

	m.flights.AssertNotCalled(t, "FindByDate", mock.Anything, mock.Anything)
}

// Delete restores the exact split the booking recorded, not the passenger
// count.
func TestFlightBookingService_Delete_RestoresSeatSplit(t *testing.T) {
	m := newMockRepos()
	service := NewFlightBookingService(m.store(), nil, "", logrus.New())
	ctx := context.Background()

	m.flightBookings.On("GetByID", ctx, int64(55)).
		Return(&domain.FlightBooking{ID: 55, Code: "abc", FlightID: 7, PeopleQ: 3, TouristSeats: 2, BusinessSeats: 1}, nil).Once()
	m.flights.On("IncrementSeats", ctx, int64(7), 2, 1).Return(nil).Once()
	m.passengers.On("UnlinkFlightBooking", ctx, int64(55)).Return(nil).Once()
	m.flightBookings.On("Delete", ctx, int64(55)).Return(nil).Once()

	err := service.Delete(ctx, 55)

	assert.NoError(t, err)
	m.flights.AssertExpectations(t)
	m.passengers.AssertExpectations(t)
	m.flightBookings.AssertExpectations(t)
}

// Edit first returns the old split to the old flight, then books the new
// parameters; moving a booking to another date lands on that date's flight.
func TestFlightBookingService_Edit_MovesBooking(t *testing.T) {
	m := newMockRepos()
	service := NewFlightBookingService(m.store(), nil, "", logrus.New())
	ctx := context.Background()

	newDate := travelDate.AddDate(0, 0, 7)
	newFlight := madridBarcelona()
	newFlight.ID = 8
	newFlight.FlightNumber = "IB5678"
	newFlight.DateFrom = newDate

	m.flightBookings.On("GetByID", ctx, int64(55)).
		Return(&domain.FlightBooking{ID: 55, Code: "abc", FlightID: 7, TouristSeats: 2, BusinessSeats: 1}, nil).Once()

	// revert against the old flight
	m.flights.On("IncrementSeats", ctx, int64(7), 2, 1).Return(nil).Once()
	m.passengers.On("UnlinkFlightBooking", ctx, int64(55)).Return(nil).Once()

	// reapply against the new date
	m.passengers.On("ExistsByID", ctx, int64(1)).Return(true, nil).Once()
	m.flights.On("FindByDate", ctx, newDate).Return([]domain.Flight{newFlight}, nil).Once()
	m.flightBookings.On("Update", ctx, mock.AnythingOfType("*domain.FlightBooking")).Return(nil).Once()
	m.flights.On("DecrementSeats", ctx, int64(8), 1, 0).Return(nil).Once()
	m.passengers.On("SetFlightBooking", ctx, int64(1), bookingIDPtr(55)).Return(nil).Once()

	result, err := service.Edit(ctx, 55, FlightBookingInput{
		Date:         newDate,
		Origin:       "Madrid",
		Destination:  "Barcelona",
		PeopleQ:      1,
		TouristSeats: 1,
		PassengerIDs: []int64{1},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), result.ID)
	assert.Equal(t, "abc", result.Code)
	assert.Equal(t, int64(8), result.FlightID)
	assert.Equal(t, "IB5678", result.FlightNumber)
	assert.Equal(t, 50.0, result.TotalCost)

	m.flights.AssertExpectations(t)
	m.flightBookings.AssertExpectations(t)
	m.flightBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
