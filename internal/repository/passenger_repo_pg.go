package repository

import (
	"context"
	"errors"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type PassengerRepository interface {
	Create(ctx context.Context, p *domain.Passenger) error
	Update(ctx context.Context, p *domain.Passenger) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	GetByDNI(ctx context.Context, dni string) (*domain.Passenger, error)
	List(ctx context.Context) ([]domain.Passenger, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	SetRoomBooking(ctx context.Context, passengerID int64, bookingID *int64) error
	SetFlightBooking(ctx context.Context, passengerID int64, bookingID *int64) error
	// UnlinkRoomBooking clears the back-reference on every passenger linked
	// to the booking.
	UnlinkRoomBooking(ctx context.Context, bookingID int64) error
	UnlinkFlightBooking(ctx context.Context, bookingID int64) error
	ListIDsByRoomBooking(ctx context.Context, bookingID int64) ([]int64, error)
	ListIDsByFlightBooking(ctx context.Context, bookingID int64) ([]int64, error)
}

type PGPassengerRepository struct {
	db Querier
}

const passengerColumns = `id, name, last_name, dni, room_booking_id, flight_booking_id`

func (r *PGPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	err := r.db.QueryRow(ctx, `INSERT INTO passengers (name, last_name, dni) VALUES ($1, $2, $3) RETURNING id`,
		p.Name, p.LastName, p.DNI).Scan(&p.ID)
	return translateUniqueViolation(err, domain.ErrDuplicateDNI)
}

func (r *PGPassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	res, err := r.db.Exec(ctx, `UPDATE passengers SET name=$2, last_name=$3, dni=$4 WHERE id=$1`,
		p.ID, p.Name, p.LastName, p.DNI)
	if err != nil {
		return translateUniqueViolation(err, domain.ErrDuplicateDNI)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrPassengerNotFound
	}
	return nil
}

func (r *PGPassengerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrPassengerNotFound
	}
	return nil
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE id=$1`, id)
	p, err := scanPassenger(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPassengerNotFound
	}
	return p, err
}

func (r *PGPassengerRepository) GetByDNI(ctx context.Context, dni string) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE dni=$1`, dni)
	p, err := scanPassenger(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPassengerNotFound
	}
	return p, err
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT `+passengerColumns+` FROM passengers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.Name, &p.LastName, &p.DNI, &p.RoomBookingID, &p.FlightBookingID); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM passengers WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}

func (r *PGPassengerRepository) SetRoomBooking(ctx context.Context, passengerID int64, bookingID *int64) error {
	res, err := r.db.Exec(ctx, `UPDATE passengers SET room_booking_id=$2 WHERE id=$1`, passengerID, bookingID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrPassengerNotFound
	}
	return nil
}

func (r *PGPassengerRepository) SetFlightBooking(ctx context.Context, passengerID int64, bookingID *int64) error {
	res, err := r.db.Exec(ctx, `UPDATE passengers SET flight_booking_id=$2 WHERE id=$1`, passengerID, bookingID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrPassengerNotFound
	}
	return nil
}

func (r *PGPassengerRepository) UnlinkRoomBooking(ctx context.Context, bookingID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE passengers SET room_booking_id=NULL WHERE room_booking_id=$1`, bookingID)
	return err
}

func (r *PGPassengerRepository) UnlinkFlightBooking(ctx context.Context, bookingID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE passengers SET flight_booking_id=NULL WHERE flight_booking_id=$1`, bookingID)
	return err
}

func (r *PGPassengerRepository) ListIDsByRoomBooking(ctx context.Context, bookingID int64) ([]int64, error) {
	return r.listIDs(ctx, `SELECT id FROM passengers WHERE room_booking_id=$1 ORDER BY id`, bookingID)
}

func (r *PGPassengerRepository) ListIDsByFlightBooking(ctx context.Context, bookingID int64) ([]int64, error) {
	return r.listIDs(ctx, `SELECT id FROM passengers WHERE flight_booking_id=$1 ORDER BY id`, bookingID)
}

func (r *PGPassengerRepository) listIDs(ctx context.Context, query string, bookingID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanPassenger(row pgx.Row) (*domain.Passenger, error) {
	var p domain.Passenger
	if err := row.Scan(&p.ID, &p.Name, &p.LastName, &p.DNI, &p.RoomBookingID, &p.FlightBookingID); err != nil {
		return nil, err
	}
	return &p, nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
