package repository

import (
	"context"
	"errors"
	"time"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error)
	ListActive(ctx context.Context) ([]domain.Flight, error)
	Deactivate(ctx context.Context, id int64) error
	// FindByDate returns active flights whose outbound or return date equals
	// date, ordered by ascending id.
	FindByDate(ctx context.Context, date time.Time) ([]domain.Flight, error)
	// DecrementSeats atomically takes seats from both classes; the update is
	// rejected if either counter would go negative, leaving both untouched.
	DecrementSeats(ctx context.Context, id int64, economy, business int) error
	// IncrementSeats returns seats to the pool. There is intentionally no
	// upper clamp to the flight's original capacity.
	IncrementSeats(ctx context.Context, id int64, economy, business int) error
}

type PGFlightRepository struct {
	db Querier
}

const flightColumns = `id, name, flight_number, origin, destination, economy_seats_q, business_seats_q, economy_seat_price, business_seat_price, active, date_from, date_to`

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	err := r.db.QueryRow(ctx, `INSERT INTO flights (name, flight_number, origin, destination, economy_seats_q, business_seats_q, economy_seat_price, business_seat_price, active, date_from, date_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		flight.Name, flight.FlightNumber, flight.Origin, flight.Destination,
		flight.EconomySeatsQ, flight.BusinessSeatsQ, flight.EconomySeatPrice, flight.BusinessSeatPrice,
		flight.Active, flight.DateFrom, flight.DateTo).Scan(&flight.ID)
	return translateUniqueViolation(err, domain.ErrDuplicateCode)
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	res, err := r.db.Exec(ctx, `UPDATE flights SET name=$2, flight_number=$3, origin=$4, destination=$5, economy_seats_q=$6, business_seats_q=$7, economy_seat_price=$8, business_seat_price=$9, date_from=$10, date_to=$11 WHERE id=$1`,
		flight.ID, flight.Name, flight.FlightNumber, flight.Origin, flight.Destination,
		flight.EconomySeatsQ, flight.BusinessSeatsQ, flight.EconomySeatPrice, flight.BusinessSeatPrice,
		flight.DateFrom, flight.DateTo)
	if err != nil {
		return translateUniqueViolation(err, domain.ErrDuplicateCode)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	flight, err := scanFlight(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFlightNotFound
	}
	return flight, err
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE flight_number=$1`, flightNumber)
	flight, err := scanFlight(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFlightNotFound
	}
	return flight, err
}

func (r *PGFlightRepository) ListActive(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights WHERE active ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectFlights(rows)
}

func (r *PGFlightRepository) Deactivate(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `UPDATE flights SET active=false WHERE id=$1 AND active`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

func (r *PGFlightRepository) FindByDate(ctx context.Context, date time.Time) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights WHERE active AND (date_from=$1 OR date_to=$1) ORDER BY id`, date)
	if err != nil {
		return nil, err
	}
	return collectFlights(rows)
}

func (r *PGFlightRepository) DecrementSeats(ctx context.Context, id int64, economy, business int) error {
	res, err := r.db.Exec(ctx, `UPDATE flights SET economy_seats_q = economy_seats_q - $2, business_seats_q = business_seats_q - $3
		WHERE id=$1 AND economy_seats_q >= $2 AND business_seats_q >= $3`, id, economy, business)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return r.insufficientSeatsError(ctx, id, economy, business)
	}
	return nil
}

func (r *PGFlightRepository) IncrementSeats(ctx context.Context, id int64, economy, business int) error {
	res, err := r.db.Exec(ctx, `UPDATE flights SET economy_seats_q = economy_seats_q + $2, business_seats_q = business_seats_q + $3 WHERE id=$1`, id, economy, business)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

// insufficientSeatsError reads the current counters to report which class ran
// out when a conditional decrement found no row to update.
func (r *PGFlightRepository) insufficientSeatsError(ctx context.Context, id int64, economy, business int) error {
	flight, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if flight.EconomySeatsQ < economy {
		return &domain.InsufficientInventoryError{
			Resource:  "economy seats",
			Place:     flight.FlightNumber,
			Requested: economy,
			Available: flight.EconomySeatsQ,
		}
	}
	return &domain.InsufficientInventoryError{
		Resource:  "business seats",
		Place:     flight.FlightNumber,
		Requested: business,
		Available: flight.BusinessSeatsQ,
	}
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Name, &f.FlightNumber, &f.Origin, &f.Destination,
		&f.EconomySeatsQ, &f.BusinessSeatsQ, &f.EconomySeatPrice, &f.BusinessSeatPrice,
		&f.Active, &f.DateFrom, &f.DateTo); err != nil {
		return nil, err
	}
	return &f, nil
}

func collectFlights(rows pgx.Rows) ([]domain.Flight, error) {
	defer rows.Close()
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.Name, &f.FlightNumber, &f.Origin, &f.Destination,
			&f.EconomySeatsQ, &f.BusinessSeatsQ, &f.EconomySeatPrice, &f.BusinessSeatPrice,
			&f.Active, &f.DateFrom, &f.DateTo); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
