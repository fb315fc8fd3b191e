package domain

import "time"

// Flight is its own seat pool: seats are per-class counters decremented on
// booking, not discrete seat rows. DateFrom is the outbound date, DateTo the
// return date.
type Flight struct {
	ID                int64
	Name              string
	FlightNumber      string
	Origin            string
	Destination       string
	EconomySeatsQ     int
	BusinessSeatsQ    int
	EconomySeatPrice  float64
	BusinessSeatPrice float64
	Active            bool
	DateFrom          time.Time
	DateTo            time.Time
}
