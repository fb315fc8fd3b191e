package passengers

import (
	"context"
	"errors"
	"strings"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/repository"
)

type PassengerUseCase interface {
	Create(ctx context.Context, input PassengerInput) (*domain.Passenger, error)
	Update(ctx context.Context, id int64, input PassengerInput) (*domain.Passenger, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Passenger, error)
	List(ctx context.Context) ([]domain.Passenger, error)
}

type PassengerInput struct {
	Name     string
	LastName string
	DNI      string
}

type PassengerService struct {
	store repository.Store
}

func NewPassengerService(store repository.Store) *PassengerService {
	return &PassengerService{store: store}
}

func (s *PassengerService) Create(ctx context.Context, input PassengerInput) (*domain.Passenger, error) {
	if err := validatePassengerInput(input); err != nil {
		return nil, err
	}

	repos := s.store.Repos()
	if _, err := repos.Passengers.GetByDNI(ctx, input.DNI); err == nil {
		return nil, domain.ErrDuplicateDNI
	} else if !errors.Is(err, domain.ErrPassengerNotFound) {
		return nil, err
	}

	p := &domain.Passenger{Name: input.Name, LastName: input.LastName, DNI: input.DNI}
	if err := repos.Passengers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PassengerService) Update(ctx context.Context, id int64, input PassengerInput) (*domain.Passenger, error) {
	if err := validatePassengerInput(input); err != nil {
		return nil, err
	}

	repos := s.store.Repos()
	p, err := repos.Passengers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = input.Name
	p.LastName = input.LastName
	p.DNI = input.DNI
	if err := repos.Passengers.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete is forbidden while the passenger is linked to a live booking; the
// booking has to be cancelled or edited first.
func (s *PassengerService) Delete(ctx context.Context, id int64) error {
	repos := s.store.Repos()
	p, err := repos.Passengers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.RoomBookingID != nil || p.FlightBookingID != nil {
		return domain.ErrPassengerBooked
	}
	return repos.Passengers.Delete(ctx, id)
}

func (s *PassengerService) Get(ctx context.Context, id int64) (*domain.Passenger, error) {
	return s.store.Repos().Passengers.GetByID(ctx, id)
}

func (s *PassengerService) List(ctx context.Context) ([]domain.Passenger, error) {
	return s.store.Repos().Passengers.List(ctx)
}

func validatePassengerInput(input PassengerInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.DNI) == "" {
		return domain.NewValidationError("name and dni are required")
	}
	return nil
}

var _ PassengerUseCase = (*PassengerService)(nil)
