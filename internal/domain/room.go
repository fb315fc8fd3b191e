package domain

import "time"

type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
)

// Room is a single exclusive-ownership slot: at most one booking holds it at
// any time, tracked by the nullable BookingID.
type Room struct {
	ID            int64
	RoomType      RoomType
	AvailableFrom time.Time
	AvailableTo   time.Time
	HotelID       int64
	BookingID     *int64
}
