package hotels

import (
	"context"
	"errors"
	"strings"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/repository"
	"github.com/sirupsen/logrus"
)

type Cache interface {
	GetHotels(ctx context.Context) ([]domain.Hotel, error)
	SetHotels(ctx context.Context, hotels []domain.Hotel) error
	InvalidateHotels(ctx context.Context) error
}

type HotelUseCase interface {
	Create(ctx context.Context, input HotelInput) (*domain.Hotel, error)
	Edit(ctx context.Context, id int64, input HotelInput) (*domain.Hotel, error)
	Get(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context) ([]domain.Hotel, error)
	Deactivate(ctx context.Context, id int64) error
	Availability(ctx context.Context, id int64) (*Availability, error)
}

type HotelInput struct {
	HotelCode       string
	Name            string
	Place           string
	SingleRoomsQ    int
	DoubleRoomsQ    int
	SingleRoomPrice float64
	DoubleRoomPrice float64
}

// Availability is re-derived from room occupancy, bypassing the cached
// counters on the hotel row.
type Availability struct {
	HotelID     int64
	DoubleRooms int
	SingleRooms int
}

type HotelService struct {
	store  repository.Store
	cache  Cache
	logger *logrus.Logger
}

func NewHotelService(store repository.Store, cache Cache, logger *logrus.Logger) *HotelService {
	return &HotelService{store: store, cache: cache, logger: logger}
}

func (s *HotelService) Create(ctx context.Context, input HotelInput) (*domain.Hotel, error) {
	if err := validateHotelInput(input); err != nil {
		return nil, err
	}

	repos := s.store.Repos()
	if _, err := repos.Hotels.GetByCode(ctx, input.HotelCode); err == nil {
		return nil, domain.ErrDuplicateCode
	} else if !errors.Is(err, domain.ErrHotelNotFound) {
		return nil, err
	}

	hotel := &domain.Hotel{
		HotelCode:       input.HotelCode,
		Name:            input.Name,
		Place:           input.Place,
		SingleRoomsQ:    input.SingleRoomsQ,
		DoubleRoomsQ:    input.DoubleRoomsQ,
		SingleRoomPrice: input.SingleRoomPrice,
		DoubleRoomPrice: input.DoubleRoomPrice,
		Active:          true,
	}
	if err := repos.Hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return hotel, nil
}

func (s *HotelService) Edit(ctx context.Context, id int64, input HotelInput) (*domain.Hotel, error) {
	if err := validateHotelInput(input); err != nil {
		return nil, err
	}

	repos := s.store.Repos()
	hotel, err := repos.Hotels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !hotel.Active {
		return nil, domain.ErrHotelNotFound
	}

	hotel.HotelCode = input.HotelCode
	hotel.Name = input.Name
	hotel.Place = input.Place
	hotel.SingleRoomsQ = input.SingleRoomsQ
	hotel.DoubleRoomsQ = input.DoubleRoomsQ
	hotel.SingleRoomPrice = input.SingleRoomPrice
	hotel.DoubleRoomPrice = input.DoubleRoomPrice
	if err := repos.Hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return hotel, nil
}

func (s *HotelService) Get(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.store.Repos().Hotels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !hotel.Active {
		return nil, domain.ErrHotelNotFound
	}
	return hotel, nil
}

func (s *HotelService) List(ctx context.Context) ([]domain.Hotel, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetHotels(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	hotels, err := s.store.Repos().Hotels.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetHotels(ctx, hotels); err != nil {
			s.logger.WithError(err).Warn("failed to cache hotel listing")
		}
	}
	return hotels, nil
}

// Deactivate soft-deletes the hotel. Forbidden while any of its rooms is
// claimed by a live booking; the check and the flag flip share one
// transaction so a booking cannot slip in between them.
func (s *HotelService) Deactivate(ctx context.Context, id int64) error {
	err := s.store.WithTx(ctx, func(repos repository.Repositories) error {
		claimed, err := repos.Rooms.CountClaimedByHotel(ctx, id)
		if err != nil {
			return err
		}
		if claimed > 0 {
			return domain.ErrHotelHasBookings
		}
		return repos.Hotels.Deactivate(ctx, id)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *HotelService) Availability(ctx context.Context, id int64) (*Availability, error) {
	repos := s.store.Repos()
	if _, err := repos.Hotels.GetByID(ctx, id); err != nil {
		return nil, err
	}
	double, single, err := repos.Hotels.CountAvailableRooms(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Availability{HotelID: id, DoubleRooms: double, SingleRooms: single}, nil
}

func (s *HotelService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateHotels(ctx); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate hotel cache")
	}
}

func validateHotelInput(input HotelInput) error {
	if strings.TrimSpace(input.HotelCode) == "" || strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Place) == "" {
		return domain.NewValidationError("hotel code, name and place are required")
	}
	if input.SingleRoomPrice < 0 || input.DoubleRoomPrice < 0 {
		return domain.NewValidationError("room prices must not be negative")
	}
	if input.SingleRoomsQ < 0 || input.DoubleRoomsQ < 0 {
		return domain.NewValidationError("room counts must not be negative")
	}
	return nil
}

var _ HotelUseCase = (*HotelService)(nil)
