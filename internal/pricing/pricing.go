// Package pricing computes booking totals from allocated units. Pure
// computation, no side effects.
package pricing

import "github.com/avelez-dev/agencia-backend/internal/domain"

// RoomBookingTotal sums the owning hotel's per-type price for every claimed
// room, then multiplies the sum by the night count. The per-room prices are
// summed first and multiplied once, not per-room-per-night.
func RoomBookingTotal(doubleRooms, singleRooms []domain.Room, hotels map[int64]domain.Hotel, nights int) float64 {
	total := 0.0
	for _, room := range doubleRooms {
		total += hotels[room.HotelID].DoubleRoomPrice
	}
	for _, room := range singleRooms {
		total += hotels[room.HotelID].SingleRoomPrice
	}
	return total * float64(nights)
}

// FlightBookingTotal prices a seat-class split against the flight's per-class
// prices.
func FlightBookingTotal(flight *domain.Flight, touristSeats, businessSeats int) float64 {
	return flight.BusinessSeatPrice*float64(businessSeats) + flight.EconomySeatPrice*float64(touristSeats)
}
