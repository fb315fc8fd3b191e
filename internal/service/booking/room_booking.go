package booking

import (
	"context"
	"strings"
	"time"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/kafka"
	"github.com/avelez-dev/agencia-backend/internal/pricing"
	"github.com/avelez-dev/agencia-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RoomBookingUseCase interface {
	Create(ctx context.Context, input RoomBookingInput) (*RoomBookingResult, error)
	Edit(ctx context.Context, id int64, input RoomBookingInput) (*RoomBookingResult, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*RoomBookingDetail, error)
	List(ctx context.Context) ([]RoomBookingDetail, error)
}

type RoomBookingInput struct {
	DateFrom     time.Time
	DateTo       time.Time
	Nights       int
	PeopleQ      int
	DoubleRoomQ  int
	SingleRoomQ  int
	Destination  string
	PassengerIDs []int64
}

// RoomBookingResult reports the persisted identity, the allocated-unit
// breakdown and the computed total.
type RoomBookingResult struct {
	ID            int64
	Code          string
	DoubleRoomIDs []int64
	SingleRoomIDs []int64
	PassengerIDs  []int64
	TotalCost     float64
}

type RoomBookingDetail struct {
	Booking      domain.RoomBooking
	RoomIDs      []int64
	PassengerIDs []int64
}

// RoomBookingService is the transactional use case for room bookings. Each of
// Create, Edit and Delete runs as one serializable transaction: allocation,
// claims, counter sync and passenger links commit or roll back together.
type RoomBookingService struct {
	store    repository.Store
	producer Producer
	topic    string
	logger   *logrus.Logger
}

func NewRoomBookingService(store repository.Store, producer Producer, topic string, logger *logrus.Logger) *RoomBookingService {
	return &RoomBookingService{store: store, producer: producer, topic: topic, logger: logger}
}

func (s *RoomBookingService) Create(ctx context.Context, input RoomBookingInput) (*RoomBookingResult, error) {
	var result *RoomBookingResult
	err := s.store.WithTx(ctx, func(repos repository.Repositories) error {
		booking := &domain.RoomBooking{Code: uuid.NewString()}
		var err error
		result, err = s.apply(ctx, repos, booking, input, true)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.logger, s.producer, s.topic, kafka.EventBookingCreated, kafka.KindRoomBooking, result.ID, result.Code, result.TotalCost)
	return result, nil
}

// Edit fully reverts the existing booking's effect, then re-runs the create
// path with the new parameters against the same identity. The booking's own
// rooms are released before the availability search, so editing a booking
// back to its original parameters always finds enough inventory.
func (s *RoomBookingService) Edit(ctx context.Context, id int64, input RoomBookingInput) (*RoomBookingResult, error) {
	var result *RoomBookingResult
	err := s.store.WithTx(ctx, func(repos repository.Repositories) error {
		existing, err := repos.RoomBookings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.revert(ctx, repos, existing.ID); err != nil {
			return err
		}
		result, err = s.apply(ctx, repos, existing, input, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.logger, s.producer, s.topic, kafka.EventBookingUpdated, kafka.KindRoomBooking, result.ID, result.Code, result.TotalCost)
	return result, nil
}

func (s *RoomBookingService) Delete(ctx context.Context, id int64) error {
	var code string
	err := s.store.WithTx(ctx, func(repos repository.Repositories) error {
		existing, err := repos.RoomBookings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		code = existing.Code
		if err := s.revert(ctx, repos, existing.ID); err != nil {
			return err
		}
		return repos.RoomBookings.Delete(ctx, existing.ID)
	})
	if err != nil {
		return err
	}

	publishEvent(ctx, s.logger, s.producer, s.topic, kafka.EventBookingCancelled, kafka.KindRoomBooking, id, code, 0)
	return nil
}

func (s *RoomBookingService) Get(ctx context.Context, id int64) (*RoomBookingDetail, error) {
	repos := s.store.Repos()
	booking, err := repos.RoomBookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, repos, booking)
}

func (s *RoomBookingService) List(ctx context.Context) ([]RoomBookingDetail, error) {
	repos := s.store.Repos()
	bookings, err := repos.RoomBookings.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]RoomBookingDetail, 0, len(bookings))
	for i := range bookings {
		d, err := s.detail(ctx, repos, &bookings[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

// apply runs the shared create path: validate, allocate, persist, claim, sync
// counters, link passengers, price. The caller provides the booking identity
// (fresh for Create, reverted-in-place for Edit).
func (s *RoomBookingService) apply(ctx context.Context, repos repository.Repositories, booking *domain.RoomBooking, input RoomBookingInput, isNew bool) (*RoomBookingResult, error) {
	destination := strings.TrimSpace(input.Destination)
	if err := validateRoomBookingInput(input, destination); err != nil {
		return nil, err
	}
	if err := validatePassengers(ctx, repos, input.PassengerIDs); err != nil {
		return nil, err
	}

	doubles, err := allocateRooms(ctx, repos, input.DoubleRoomQ, domain.RoomTypeDouble, input.DateFrom, input.DateTo, destination)
	if err != nil {
		return nil, err
	}
	singles, err := allocateRooms(ctx, repos, input.SingleRoomQ, domain.RoomTypeSingle, input.DateFrom, input.DateTo, destination)
	if err != nil {
		return nil, err
	}

	booking.DateFrom = input.DateFrom
	booking.DateTo = input.DateTo
	booking.Nights = input.Nights
	booking.PeopleQ = input.PeopleQ
	booking.PassengerIDs = input.PassengerIDs
	if isNew {
		err = repos.RoomBookings.Create(ctx, booking)
	} else {
		err = repos.RoomBookings.Update(ctx, booking)
	}
	if err != nil {
		return nil, err
	}

	allRooms := make([]domain.Room, 0, len(doubles)+len(singles))
	allRooms = append(allRooms, doubles...)
	allRooms = append(allRooms, singles...)
	for _, room := range allRooms {
		if err := repos.Rooms.Claim(ctx, room.ID, booking.ID); err != nil {
			return nil, err
		}
	}

	if err := decrementHotelCounters(ctx, repos, doubles, singles); err != nil {
		return nil, err
	}

	for _, pid := range input.PassengerIDs {
		if err := repos.Passengers.SetRoomBooking(ctx, pid, &booking.ID); err != nil {
			return nil, err
		}
	}

	hotels, err := loadHotels(ctx, repos, allRooms)
	if err != nil {
		return nil, err
	}
	total := pricing.RoomBookingTotal(doubles, singles, hotels, input.Nights)

	return &RoomBookingResult{
		ID:            booking.ID,
		Code:          booking.Code,
		DoubleRoomIDs: roomIDs(doubles),
		SingleRoomIDs: roomIDs(singles),
		PassengerIDs:  input.PassengerIDs,
		TotalCost:     total,
	}, nil
}

// revert undoes the booking's whole inventory effect: release every claimed
// room, restore the owning hotels' counters, unlink every passenger.
func (s *RoomBookingService) revert(ctx context.Context, repos repository.Repositories, bookingID int64) error {
	rooms, err := repos.Rooms.ListByBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	for _, room := range rooms {
		if err := repos.Rooms.Release(ctx, room.ID); err != nil {
			return err
		}
	}

	doubles, singles := splitByType(rooms)
	if err := incrementHotelCounters(ctx, repos, doubles, singles); err != nil {
		return err
	}

	return repos.Passengers.UnlinkRoomBooking(ctx, bookingID)
}

func (s *RoomBookingService) detail(ctx context.Context, repos repository.Repositories, booking *domain.RoomBooking) (*RoomBookingDetail, error) {
	rooms, err := repos.Rooms.ListByBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	passengerIDs, err := repos.Passengers.ListIDsByRoomBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.PassengerIDs = passengerIDs
	return &RoomBookingDetail{
		Booking:      *booking,
		RoomIDs:      roomIDs(rooms),
		PassengerIDs: passengerIDs,
	}, nil
}

func validateRoomBookingInput(input RoomBookingInput, destination string) error {
	if input.DoubleRoomQ < 0 || input.SingleRoomQ < 0 {
		return domain.NewValidationError("room quantities must not be negative")
	}
	if input.DoubleRoomQ == 0 && input.SingleRoomQ == 0 {
		return domain.NewValidationError("at least one room must be requested")
	}
	if destination == "" {
		return domain.NewValidationError("destination is required")
	}
	if input.DateTo.Before(input.DateFrom) {
		return domain.NewValidationError("date_to must not be before date_from")
	}
	return nil
}

// decrementHotelCounters applies one paired counter update per hotel,
// mirroring the claims taken in the same transaction.
func decrementHotelCounters(ctx context.Context, repos repository.Repositories, doubles, singles []domain.Room) error {
	for hotelID, deltas := range countersByHotel(doubles, singles) {
		if err := repos.Hotels.DecrementRoomAvailability(ctx, hotelID, deltas.double, deltas.single); err != nil {
			return err
		}
	}
	return nil
}

func incrementHotelCounters(ctx context.Context, repos repository.Repositories, doubles, singles []domain.Room) error {
	for hotelID, deltas := range countersByHotel(doubles, singles) {
		if err := repos.Hotels.IncrementRoomAvailability(ctx, hotelID, deltas.double, deltas.single); err != nil {
			return err
		}
	}
	return nil
}

type counterDeltas struct {
	double int
	single int
}

func countersByHotel(doubles, singles []domain.Room) map[int64]counterDeltas {
	deltas := make(map[int64]counterDeltas)
	for _, room := range doubles {
		d := deltas[room.HotelID]
		d.double++
		deltas[room.HotelID] = d
	}
	for _, room := range singles {
		d := deltas[room.HotelID]
		d.single++
		deltas[room.HotelID] = d
	}
	return deltas
}

func splitByType(rooms []domain.Room) (doubles, singles []domain.Room) {
	for _, room := range rooms {
		if room.RoomType == domain.RoomTypeDouble {
			doubles = append(doubles, room)
		} else {
			singles = append(singles, room)
		}
	}
	return doubles, singles
}

func loadHotels(ctx context.Context, repos repository.Repositories, rooms []domain.Room) (map[int64]domain.Hotel, error) {
	hotels := make(map[int64]domain.Hotel)
	for _, room := range rooms {
		if _, ok := hotels[room.HotelID]; ok {
			continue
		}
		hotel, err := repos.Hotels.GetByID(ctx, room.HotelID)
		if err != nil {
			return nil, err
		}
		hotels[room.HotelID] = *hotel
	}
	return hotels, nil
}

func roomIDs(rooms []domain.Room) []int64 {
	ids := make([]int64, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}
	return ids
}

var _ RoomBookingUseCase = (*RoomBookingService)(nil)
