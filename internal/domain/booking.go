package domain

import "time"

// RoomBooking holds a set of claimed rooms for a date range. The claimed room
// ids live on the rooms themselves (Room.BookingID); PassengerIDs are the
// back-references kept on passengers.
type RoomBooking struct {
	ID           int64
	Code         string
	DateFrom     time.Time
	DateTo       time.Time
	Nights       int
	PeopleQ      int
	PassengerIDs []int64
}

// FlightBooking records the per-class seat split it took from the flight so a
// later revert restores exactly what was claimed.
type FlightBooking struct {
	ID            int64
	Code          string
	FlightID      int64
	Date          time.Time
	PeopleQ       int
	TouristSeats  int
	BusinessSeats int
	PassengerIDs  []int64
}
