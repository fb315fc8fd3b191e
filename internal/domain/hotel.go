package domain

// Hotel carries per-type counters of rooms believed available. The counters
// are a cache kept in step with room claims; the authoritative occupancy lives
// on each Room's BookingID.
type Hotel struct {
	ID              int64
	HotelCode       string
	Name            string
	Place           string
	SingleRoomsQ    int
	DoubleRoomsQ    int
	SingleRoomPrice float64
	DoubleRoomPrice float64
	Active          bool
}
