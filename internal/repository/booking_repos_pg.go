package repository

import (
	"context"
	"errors"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type RoomBookingRepository interface {
	Create(ctx context.Context, b *domain.RoomBooking) error
	Update(ctx context.Context, b *domain.RoomBooking) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.RoomBooking, error)
	List(ctx context.Context) ([]domain.RoomBooking, error)
}

type FlightBookingRepository interface {
	Create(ctx context.Context, b *domain.FlightBooking) error
	Update(ctx context.Context, b *domain.FlightBooking) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.FlightBooking, error)
	List(ctx context.Context) ([]domain.FlightBooking, error)
	CountByFlight(ctx context.Context, flightID int64) (int, error)
}

type PGRoomBookingRepository struct {
	db Querier
}

func (r *PGRoomBookingRepository) Create(ctx context.Context, b *domain.RoomBooking) error {
	return r.db.QueryRow(ctx, `INSERT INTO room_bookings (code, date_from, date_to, nights, people_q)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		b.Code, b.DateFrom, b.DateTo, b.Nights, b.PeopleQ).Scan(&b.ID)
}

func (r *PGRoomBookingRepository) Update(ctx context.Context, b *domain.RoomBooking) error {
	res, err := r.db.Exec(ctx, `UPDATE room_bookings SET date_from=$2, date_to=$3, nights=$4, people_q=$5 WHERE id=$1`,
		b.ID, b.DateFrom, b.DateTo, b.Nights, b.PeopleQ)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *PGRoomBookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM room_bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *PGRoomBookingRepository) GetByID(ctx context.Context, id int64) (*domain.RoomBooking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, code, date_from, date_to, nights, people_q FROM room_bookings WHERE id=$1`, id)
	var b domain.RoomBooking
	if err := row.Scan(&b.ID, &b.Code, &b.DateFrom, &b.DateTo, &b.Nights, &b.PeopleQ); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGRoomBookingRepository) List(ctx context.Context) ([]domain.RoomBooking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, date_from, date_to, nights, people_q FROM room_bookings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.RoomBooking, 0)
	for rows.Next() {
		var b domain.RoomBooking
		if err := rows.Scan(&b.ID, &b.Code, &b.DateFrom, &b.DateTo, &b.Nights, &b.PeopleQ); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

type PGFlightBookingRepository struct {
	db Querier
}

const flightBookingColumns = `id, code, flight_id, date, people_q, tourist_seats, business_seats`

func (r *PGFlightBookingRepository) Create(ctx context.Context, b *domain.FlightBooking) error {
	return r.db.QueryRow(ctx, `INSERT INTO flight_bookings (code, flight_id, date, people_q, tourist_seats, business_seats)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		b.Code, b.FlightID, b.Date, b.PeopleQ, b.TouristSeats, b.BusinessSeats).Scan(&b.ID)
}

func (r *PGFlightBookingRepository) Update(ctx context.Context, b *domain.FlightBooking) error {
	res, err := r.db.Exec(ctx, `UPDATE flight_bookings SET flight_id=$2, date=$3, people_q=$4, tourist_seats=$5, business_seats=$6 WHERE id=$1`,
		b.ID, b.FlightID, b.Date, b.PeopleQ, b.TouristSeats, b.BusinessSeats)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *PGFlightBookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM flight_bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *PGFlightBookingRepository) GetByID(ctx context.Context, id int64) (*domain.FlightBooking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightBookingColumns+` FROM flight_bookings WHERE id=$1`, id)
	var b domain.FlightBooking
	if err := row.Scan(&b.ID, &b.Code, &b.FlightID, &b.Date, &b.PeopleQ, &b.TouristSeats, &b.BusinessSeats); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGFlightBookingRepository) List(ctx context.Context) ([]domain.FlightBooking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightBookingColumns+` FROM flight_bookings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.FlightBooking, 0)
	for rows.Next() {
		var b domain.FlightBooking
		if err := rows.Scan(&b.ID, &b.Code, &b.FlightID, &b.Date, &b.PeopleQ, &b.TouristSeats, &b.BusinessSeats); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGFlightBookingRepository) CountByFlight(ctx context.Context, flightID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM flight_bookings WHERE flight_id=$1`, flightID).Scan(&n)
	return n, err
}

var (
	_ RoomBookingRepository   = (*PGRoomBookingRepository)(nil)
	_ FlightBookingRepository = (*PGFlightBookingRepository)(nil)
)
