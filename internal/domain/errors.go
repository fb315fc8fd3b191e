package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the caller-facing failure taxonomy. Availability and
// validation failures are caller-correctable; integrity failures are only
// discovered at write time.
var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrPassengerNotFound  = errors.New("passenger not found")
	ErrNoFlightOnDate     = errors.New("no flights available on that date")
	ErrRouteMismatch      = errors.New("flights exist on that date but none match origin and destination")
	ErrRoomAlreadyClaimed = errors.New("room is already claimed by another booking")
	ErrDuplicateCode      = errors.New("code already in use")
	ErrDuplicateDNI       = errors.New("a passenger with that dni already exists")
	ErrHotelHasBookings   = errors.New("hotel has rooms claimed by live bookings")
	ErrFlightHasBookings  = errors.New("flight has outstanding bookings")
	ErrPassengerBooked    = errors.New("passenger is referenced by a live booking")
	ErrFlightInactive     = errors.New("flight is not active")
)

// ValidationError rejects a request before any allocation is attempted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PassengerNotFoundError names every referenced passenger id that does not
// exist.
type PassengerNotFoundError struct {
	IDs []int64
}

func (e *PassengerNotFoundError) Error() string {
	return fmt.Sprintf("passengers not found: %v", e.IDs)
}

func (e *PassengerNotFoundError) Unwrap() error { return ErrPassengerNotFound }

// InsufficientInventoryError names what ran out and where. Resource is a
// human-readable unit class ("DOUBLE rooms", "economy seats"), Place the
// destination or flight number.
type InsufficientInventoryError struct {
	Resource  string
	Place     string
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("not enough %s available at %s: requested %d, available %d",
		e.Resource, e.Place, e.Requested, e.Available)
}
