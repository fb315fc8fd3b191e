package booking

import (
	"context"
	"strings"
	"time"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/repository"
)

// allocateRooms selects concrete rooms for a requested quantity of one type.
// Requesting zero is valid and yields no rooms. A shortage fails with
// InsufficientInventoryError naming the type and destination; nothing is
// claimed here, so a failed sibling sub-request in the same transaction leaves
// no partial holds behind.
func allocateRooms(ctx context.Context, repos repository.Repositories, requested int, roomType domain.RoomType,
	dateFrom, dateTo time.Time, destination string) ([]domain.Room, error) {
	if requested <= 0 {
		return nil, nil
	}

	available, err := repos.Rooms.FindAvailable(ctx, roomType, dateFrom, dateTo, destination)
	if err != nil {
		return nil, err
	}
	if len(available) < requested {
		return nil, &domain.InsufficientInventoryError{
			Resource:  string(roomType) + " rooms",
			Place:     destination,
			Requested: requested,
			Available: len(available),
		}
	}
	return available[:requested], nil
}

// selectFlight picks the flight for a requested date and route. Flights match
// on the outbound or return date, and on the route in either direction to
// support round trips. The first match by ascending id wins.
func selectFlight(ctx context.Context, repos repository.Repositories, date time.Time, origin, destination string) (*domain.Flight, error) {
	onDate, err := repos.Flights.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(onDate) == 0 {
		return nil, domain.ErrNoFlightOnDate
	}

	for i := range onDate {
		f := &onDate[i]
		if routeMatches(f, origin, destination) {
			return f, nil
		}
	}
	return nil, domain.ErrRouteMismatch
}

func routeMatches(f *domain.Flight, origin, destination string) bool {
	return (strings.EqualFold(f.Origin, origin) && strings.EqualFold(f.Destination, destination)) ||
		(strings.EqualFold(f.Origin, destination) && strings.EqualFold(f.Destination, origin))
}

// validatePassengers confirms every referenced passenger exists before any
// allocation is attempted, collecting all missing ids into one failure.
func validatePassengers(ctx context.Context, repos repository.Repositories, ids []int64) error {
	if len(ids) == 0 {
		return domain.NewValidationError("at least one passenger is required")
	}

	var missing []int64
	for _, id := range ids {
		exists, err := repos.Passengers.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &domain.PassengerNotFoundError{IDs: missing}
	}
	return nil
}
