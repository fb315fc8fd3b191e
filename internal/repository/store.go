package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx, so
// every repository can run against the pool or inside a transaction unchanged.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles every repository bound to one Querier.
type Repositories struct {
	Hotels         HotelRepository
	Flights        FlightRepository
	Rooms          RoomRepository
	Passengers     PassengerRepository
	RoomBookings   RoomBookingRepository
	FlightBookings FlightBookingRepository
}

// Store hands out repositories and runs functions inside a single serializable
// transaction. Claims, counter updates, links and booking rows issued through
// the transactional Repositories commit or roll back together.
type Store interface {
	Repos() Repositories
	WithTx(ctx context.Context, fn func(Repositories) error) error
}

type PGStore struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func newRepositories(q Querier) Repositories {
	return Repositories{
		Hotels:         &PGHotelRepository{db: q},
		Flights:        &PGFlightRepository{db: q},
		Rooms:          &PGRoomRepository{db: q},
		Passengers:     &PGPassengerRepository{db: q},
		RoomBookings:   &PGRoomBookingRepository{db: q},
		FlightBookings: &PGFlightBookingRepository{db: q},
	}
}

func (s *PGStore) Repos() Repositories {
	return newRepositories(s.pool)
}

func (s *PGStore) WithTx(ctx context.Context, fn func(Repositories) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(newRepositories(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

var _ Store = (*PGStore)(nil)
