package domain

// Passenger may reference at most one room booking and one flight booking at a
// time. DNI is unique across passengers.
type Passenger struct {
	ID              int64
	Name            string
	LastName        string
	DNI             string
	RoomBookingID   *int64
	FlightBookingID *int64
}
