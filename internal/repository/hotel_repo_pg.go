package repository

import (
	"context"
	"errors"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) error
	Update(ctx context.Context, hotel *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	GetByCode(ctx context.Context, hotelCode string) (*domain.Hotel, error)
	ListActive(ctx context.Context) ([]domain.Hotel, error)
	Deactivate(ctx context.Context, id int64) error
	// DecrementRoomAvailability and IncrementRoomAvailability maintain the
	// cached per-type counters. They must run inside the same transaction as
	// the room claims they mirror.
	DecrementRoomAvailability(ctx context.Context, hotelID int64, doubleDelta, singleDelta int) error
	IncrementRoomAvailability(ctx context.Context, hotelID int64, doubleDelta, singleDelta int) error
	// CountAvailableRooms re-derives availability from room occupancy, the
	// authoritative source, for read paths that cannot tolerate counter drift.
	CountAvailableRooms(ctx context.Context, hotelID int64) (double int, single int, err error)
}

type PGHotelRepository struct {
	db Querier
}

const hotelColumns = `id, hotel_code, name, place, single_rooms_q, double_rooms_q, single_room_price, double_room_price, active`

func (r *PGHotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	err := r.db.QueryRow(ctx, `INSERT INTO hotels (hotel_code, name, place, single_rooms_q, double_rooms_q, single_room_price, double_room_price, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		hotel.HotelCode, hotel.Name, hotel.Place, hotel.SingleRoomsQ, hotel.DoubleRoomsQ,
		hotel.SingleRoomPrice, hotel.DoubleRoomPrice, hotel.Active).Scan(&hotel.ID)
	return translateUniqueViolation(err, domain.ErrDuplicateCode)
}

func (r *PGHotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	res, err := r.db.Exec(ctx, `UPDATE hotels SET hotel_code=$2, name=$3, place=$4, single_rooms_q=$5, double_rooms_q=$6, single_room_price=$7, double_room_price=$8 WHERE id=$1`,
		hotel.ID, hotel.HotelCode, hotel.Name, hotel.Place, hotel.SingleRoomsQ, hotel.DoubleRoomsQ,
		hotel.SingleRoomPrice, hotel.DoubleRoomPrice)
	if err != nil {
		return translateUniqueViolation(err, domain.ErrDuplicateCode)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *PGHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	row := r.db.QueryRow(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id=$1`, id)
	hotel, err := scanHotel(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrHotelNotFound
	}
	return hotel, err
}

func (r *PGHotelRepository) GetByCode(ctx context.Context, hotelCode string) (*domain.Hotel, error) {
	row := r.db.QueryRow(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE hotel_code=$1`, hotelCode)
	hotel, err := scanHotel(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrHotelNotFound
	}
	return hotel, err
}

func (r *PGHotelRepository) ListActive(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.Query(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE active ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.HotelCode, &h.Name, &h.Place, &h.SingleRoomsQ, &h.DoubleRoomsQ,
			&h.SingleRoomPrice, &h.DoubleRoomPrice, &h.Active); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

func (r *PGHotelRepository) Deactivate(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `UPDATE hotels SET active=false WHERE id=$1 AND active`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *PGHotelRepository) DecrementRoomAvailability(ctx context.Context, hotelID int64, doubleDelta, singleDelta int) error {
	res, err := r.db.Exec(ctx, `UPDATE hotels SET double_rooms_q = double_rooms_q - $2, single_rooms_q = single_rooms_q - $3 WHERE id=$1`,
		hotelID, doubleDelta, singleDelta)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *PGHotelRepository) IncrementRoomAvailability(ctx context.Context, hotelID int64, doubleDelta, singleDelta int) error {
	res, err := r.db.Exec(ctx, `UPDATE hotels SET double_rooms_q = double_rooms_q + $2, single_rooms_q = single_rooms_q + $3 WHERE id=$1`,
		hotelID, doubleDelta, singleDelta)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *PGHotelRepository) CountAvailableRooms(ctx context.Context, hotelID int64) (int, int, error) {
	var double, single int
	err := r.db.QueryRow(ctx, `SELECT
		count(*) FILTER (WHERE room_type = 'DOUBLE' AND booking_id IS NULL),
		count(*) FILTER (WHERE room_type = 'SINGLE' AND booking_id IS NULL)
		FROM rooms WHERE hotel_id=$1`, hotelID).Scan(&double, &single)
	return double, single, err
}

func scanHotel(row pgx.Row) (*domain.Hotel, error) {
	var h domain.Hotel
	if err := row.Scan(&h.ID, &h.HotelCode, &h.Name, &h.Place, &h.SingleRoomsQ, &h.DoubleRoomsQ,
		&h.SingleRoomPrice, &h.DoubleRoomPrice, &h.Active); err != nil {
		return nil, err
	}
	return &h, nil
}

var _ HotelRepository = (*PGHotelRepository)(nil)
