package rooms

import (
	"context"
	"time"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/repository"
)

type RoomUseCase interface {
	Create(ctx context.Context, input RoomInput) (*domain.Room, error)
	Update(ctx context.Context, id int64, input RoomInput) (*domain.Room, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	FindAvailableByDestination(ctx context.Context, from, to time.Time, destination string) ([]domain.Room, error)
	FindAvailableByTypeAndDestination(ctx context.Context, roomType domain.RoomType, from, to time.Time, destination string) ([]domain.Room, error)
}

type RoomInput struct {
	RoomType      domain.RoomType
	AvailableFrom time.Time
	AvailableTo   time.Time
	HotelID       int64
}

type RoomService struct {
	store repository.Store
}

func NewRoomService(store repository.Store) *RoomService {
	return &RoomService{store: store}
}

func (s *RoomService) Create(ctx context.Context, input RoomInput) (*domain.Room, error) {
	if err := validateRoomInput(input); err != nil {
		return nil, err
	}

	repos := s.store.Repos()
	if _, err := repos.Hotels.GetByID(ctx, input.HotelID); err != nil {
		return nil, err
	}

	room := &domain.Room{
		RoomType:      input.RoomType,
		AvailableFrom: input.AvailableFrom,
		AvailableTo:   input.AvailableTo,
		HotelID:       input.HotelID,
	}
	if err := repos.Rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id int64, input RoomInput) (*domain.Room, error) {
	if err := validateRoomInput(input); err != nil {
		return nil, err
	}

	repos := s.store.Repos()
	room, err := repos.Rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The owning hotel is immutable after creation; only type and window move.
	room.RoomType = input.RoomType
	room.AvailableFrom = input.AvailableFrom
	room.AvailableTo = input.AvailableTo
	if err := repos.Rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id int64) error {
	return s.store.Repos().Rooms.Delete(ctx, id)
}

func (s *RoomService) Get(ctx context.Context, id int64) (*domain.Room, error) {
	return s.store.Repos().Rooms.GetByID(ctx, id)
}

func (s *RoomService) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return s.store.Repos().Rooms.ListByHotel(ctx, hotelID)
}

func (s *RoomService) FindAvailableByDestination(ctx context.Context, from, to time.Time, destination string) ([]domain.Room, error) {
	return s.store.Repos().Rooms.FindAvailableByDestination(ctx, from, to, destination)
}

func (s *RoomService) FindAvailableByTypeAndDestination(ctx context.Context, roomType domain.RoomType, from, to time.Time, destination string) ([]domain.Room, error) {
	return s.store.Repos().Rooms.FindAvailable(ctx, roomType, from, to, destination)
}

func validateRoomInput(input RoomInput) error {
	if input.RoomType != domain.RoomTypeSingle && input.RoomType != domain.RoomTypeDouble {
		return domain.NewValidationError("room type must be SINGLE or DOUBLE")
	}
	if input.HotelID == 0 {
		return domain.NewValidationError("hotel id is required")
	}
	if input.AvailableTo.Before(input.AvailableFrom) {
		return domain.NewValidationError("available_to must not be before available_from")
	}
	return nil
}

var _ RoomUseCase = (*RoomService)(nil)
