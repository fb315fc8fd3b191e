package repository

import (
	"errors"
	"testing"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewStore(t *testing.T) {
	pool := &pgxpool.Pool{}
	store := NewStore(pool)
	assert.NotNil(t, store)

	repos := store.Repos()
	assert.NotNil(t, repos.Hotels)
	assert.NotNil(t, repos.Flights)
	assert.NotNil(t, repos.Rooms)
	assert.NotNil(t, repos.Passengers)
	assert.NotNil(t, repos.RoomBookings)
	assert.NotNil(t, repos.FlightBookings)
}

func TestTranslateUniqueViolation(t *testing.T) {
	assert.NoError(t, translateUniqueViolation(nil, domain.ErrDuplicateCode))

	pgErr := &pgconn.PgError{Code: uniqueViolationCode}
	assert.ErrorIs(t, translateUniqueViolation(pgErr, domain.ErrDuplicateCode), domain.ErrDuplicateCode)
	assert.ErrorIs(t, translateUniqueViolation(pgErr, domain.ErrDuplicateDNI), domain.ErrDuplicateDNI)

	other := errors.New("connection refused")
	assert.Equal(t, other, translateUniqueViolation(other, domain.ErrDuplicateCode))

	notUnique := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, notUnique, translateUniqueViolation(notUnique, domain.ErrDuplicateCode))
}
