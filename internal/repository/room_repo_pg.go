package repository

import (
	"context"
	"errors"
	"time"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	// FindAvailable returns unclaimed rooms of the given type whose
	// availability window fully covers [from, to] and whose hotel is active
	// and located at destination (case-insensitive). Ordered by ascending
	// room id.
	FindAvailable(ctx context.Context, roomType domain.RoomType, from, to time.Time, destination string) ([]domain.Room, error)
	FindAvailableByDestination(ctx context.Context, from, to time.Time, destination string) ([]domain.Room, error)
	// Claim sets the owning booking; it fails with ErrRoomAlreadyClaimed if
	// the room is held by any booking, so a lost race is detected instead of
	// double-selling the room.
	Claim(ctx context.Context, roomID, bookingID int64) error
	// Release clears the owning booking. No-op if the room is already free.
	Release(ctx context.Context, roomID int64) error
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Room, error)
	CountClaimedByHotel(ctx context.Context, hotelID int64) (int, error)
}

type PGRoomRepository struct {
	db Querier
}

const roomColumns = `id, room_type, available_from, available_to, hotel_id, booking_id`

func (r *PGRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.QueryRow(ctx, `INSERT INTO rooms (room_type, available_from, available_to, hotel_id)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		room.RoomType, room.AvailableFrom, room.AvailableTo, room.HotelID).Scan(&room.ID)
}

func (r *PGRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	res, err := r.db.Exec(ctx, `UPDATE rooms SET room_type=$2, available_from=$3, available_to=$4 WHERE id=$1`,
		room.ID, room.RoomType, room.AvailableFrom, room.AvailableTo)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *PGRoomRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *PGRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id=$1`, id)
	room, err := scanRoom(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRoomNotFound
	}
	return room, err
}

func (r *PGRoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms WHERE hotel_id=$1 ORDER BY id`, hotelID)
	if err != nil {
		return nil, err
	}
	return collectRooms(rows)
}

func (r *PGRoomRepository) FindAvailable(ctx context.Context, roomType domain.RoomType, from, to time.Time, destination string) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT r.id, r.room_type, r.available_from, r.available_to, r.hotel_id, r.booking_id
		FROM rooms r
		JOIN hotels h ON h.id = r.hotel_id
		WHERE r.room_type = $1
		  AND r.available_from <= $2
		  AND r.available_to >= $3
		  AND r.booking_id IS NULL
		  AND h.active
		  AND lower(h.place) = lower($4)
		ORDER BY r.id`, roomType, from, to, destination)
	if err != nil {
		return nil, err
	}
	return collectRooms(rows)
}

func (r *PGRoomRepository) FindAvailableByDestination(ctx context.Context, from, to time.Time, destination string) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT r.id, r.room_type, r.available_from, r.available_to, r.hotel_id, r.booking_id
		FROM rooms r
		JOIN hotels h ON h.id = r.hotel_id
		WHERE r.available_from <= $1
		  AND r.available_to >= $2
		  AND r.booking_id IS NULL
		  AND h.active
		  AND lower(h.place) = lower($3)
		ORDER BY r.id`, from, to, destination)
	if err != nil {
		return nil, err
	}
	return collectRooms(rows)
}

func (r *PGRoomRepository) Claim(ctx context.Context, roomID, bookingID int64) error {
	res, err := r.db.Exec(ctx, `UPDATE rooms SET booking_id=$2 WHERE id=$1 AND booking_id IS NULL`, roomID, bookingID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM rooms WHERE id=$1)`, roomID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrRoomNotFound
		}
		return domain.ErrRoomAlreadyClaimed
	}
	return nil
}

func (r *PGRoomRepository) Release(ctx context.Context, roomID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE rooms SET booking_id=NULL WHERE id=$1`, roomID)
	return err
}

func (r *PGRoomRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms WHERE booking_id=$1 ORDER BY id`, bookingID)
	if err != nil {
		return nil, err
	}
	return collectRooms(rows)
}

func (r *PGRoomRepository) CountClaimedByHotel(ctx context.Context, hotelID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM rooms WHERE hotel_id=$1 AND booking_id IS NOT NULL`, hotelID).Scan(&n)
	return n, err
}

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var room domain.Room
	if err := row.Scan(&room.ID, &room.RoomType, &room.AvailableFrom, &room.AvailableTo, &room.HotelID, &room.BookingID); err != nil {
		return nil, err
	}
	return &room, nil
}

func collectRooms(rows pgx.Rows) ([]domain.Room, error) {
	defer rows.Close()
	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.RoomType, &room.AvailableFrom, &room.AvailableTo, &room.HotelID, &room.BookingID); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

var _ RoomRepository = (*PGRoomRepository)(nil)
