package booking

import (
	"context"
	"time"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

// stubStore satisfies repository.Store without a database: WithTx simply runs
// the function against the mock repositories, so every test observes the exact
// sequence of calls the use case would issue inside the transaction.
type stubStore struct {
	repos repository.Repositories
}

func (s *stubStore) Repos() repository.Repositories { return s.repos }

func (s *stubStore) WithTx(ctx context.Context, fn func(repository.Repositories) error) error {
	return fn(s.repos)
}

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) GetByCode(ctx context.Context, hotelCode string) (*domain.Hotel, error) {
	args := m.Called(ctx, hotelCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) ListActive(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHotelRepository) DecrementRoomAvailability(ctx context.Context, hotelID int64, doubleDelta, singleDelta int) error {
	args := m.Called(ctx, hotelID, doubleDelta, singleDelta)
	return args.Error(0)
}

func (m *MockHotelRepository) IncrementRoomAvailability(ctx context.Context, hotelID int64, doubleDelta, singleDelta int) error {
	args := m.Called(ctx, hotelID, doubleDelta, singleDelta)
	return args.Error(0)
}

func (m *MockHotelRepository) CountAvailableRooms(ctx context.Context, hotelID int64) (int, int, error) {
	args := m.Called(ctx, hotelID)
	return args.Int(0), args.Int(1), args.Error(2)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListActive(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightRepository) FindByDate(ctx context.Context, date time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) DecrementSeats(ctx context.Context, id int64, economy, business int) error {
	args := m.Called(ctx, id, economy, business)
	return args.Error(0)
}

func (m *MockFlightRepository) IncrementSeats(ctx context.Context, id int64, economy, business int) error {
	args := m.Called(ctx, id, economy, business)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindAvailable(ctx context.Context, roomType domain.RoomType, from, to time.Time, destination string) ([]domain.Room, error) {
	args := m.Called(ctx, roomType, from, to, destination)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindAvailableByDestination(ctx context.Context, from, to time.Time, destination string) ([]domain.Room, error) {
	args := m.Called(ctx, from, to, destination)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Claim(ctx context.Context, roomID, bookingID int64) error {
	args := m.Called(ctx, roomID, bookingID)
	return args.Error(0)
}

func (m *MockRoomRepository) Release(ctx context.Context, roomID int64) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func (m *MockRoomRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Room, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) CountClaimedByHotel(ctx context.Context, hotelID int64) (int, error) {
	args := m.Called(ctx, hotelID)
	return args.Int(0), args.Error(1)
}

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPassengerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) GetByDNI(ctx context.Context, dni string) (*domain.Passenger, error) {
	args := m.Called(ctx, dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPassengerRepository) SetRoomBooking(ctx context.Context, passengerID int64, bookingID *int64) error {
	args := m.Called(ctx, passengerID, bookingID)
	return args.Error(0)
}

func (m *MockPassengerRepository) SetFlightBooking(ctx context.Context, passengerID int64, bookingID *int64) error {
	args := m.Called(ctx, passengerID, bookingID)
	return args.Error(0)
}

func (m *MockPassengerRepository) UnlinkRoomBooking(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockPassengerRepository) UnlinkFlightBooking(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockPassengerRepository) ListIDsByRoomBooking(ctx context.Context, bookingID int64) ([]int64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockPassengerRepository) ListIDsByFlightBooking(ctx context.Context, bookingID int64) ([]int64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]int64), args.Error(1)
}

type MockRoomBookingRepository struct {
	mock.Mock
}

func (m *MockRoomBookingRepository) Create(ctx context.Context, b *domain.RoomBooking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRoomBookingRepository) Update(ctx context.Context, b *domain.RoomBooking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRoomBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomBookingRepository) GetByID(ctx context.Context, id int64) (*domain.RoomBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomBooking), args.Error(1)
}

func (m *MockRoomBookingRepository) List(ctx context.Context) ([]domain.RoomBooking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RoomBooking), args.Error(1)
}

type MockFlightBookingRepository struct {
	mock.Mock
}

func (m *MockFlightBookingRepository) Create(ctx context.Context, b *domain.FlightBooking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockFlightBookingRepository) Update(ctx context.Context, b *domain.FlightBooking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockFlightBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightBookingRepository) GetByID(ctx context.Context, id int64) (*domain.FlightBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightBooking), args.Error(1)
}

func (m *MockFlightBookingRepository) List(ctx context.Context) ([]domain.FlightBooking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FlightBooking), args.Error(1)
}

func (m *MockFlightBookingRepository) CountByFlight(ctx context.Context, flightID int64) (int, error) {
	args := m.Called(ctx, flightID)
	return args.Int(0), args.Error(1)
}

type mockRepos struct {
	hotels         *MockHotelRepository
	flights        *MockFlightRepository
	rooms          *MockRoomRepository
	passengers     *MockPassengerRepository
	roomBookings   *MockRoomBookingRepository
	flightBookings *MockFlightBookingRepository
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		hotels:         &MockHotelRepository{},
		flights:        &MockFlightRepository{},
		rooms:          &MockRoomRepository{},
		passengers:     &MockPassengerRepository{},
		roomBookings:   &MockRoomBookingRepository{},
		flightBookings: &MockFlightBookingRepository{},
	}
}

func (m *mockRepos) store() *stubStore {
	return &stubStore{repos: repository.Repositories{
		Hotels:         m.hotels,
		Flights:        m.flights,
		Rooms:          m.rooms,
		Passengers:     m.passengers,
		RoomBookings:   m.roomBookings,
		FlightBookings: m.flightBookings,
	}}
}
