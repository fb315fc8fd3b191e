package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// writeError maps the domain failure taxonomy onto HTTP statuses: validation
// and availability to 400, not-found to 404, write-time integrity conflicts
// to 409, everything else to an opaque 500.
func writeError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var inventoryErr *domain.InsufficientInventoryError

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &inventoryErr),
		errors.Is(err, domain.ErrNoFlightOnDate),
		errors.Is(err, domain.ErrRouteMismatch),
		errors.Is(err, domain.ErrHotelHasBookings),
		errors.Is(err, domain.ErrFlightHasBookings),
		errors.Is(err, domain.ErrPassengerBooked),
		errors.Is(err, domain.ErrFlightInactive):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrHotelNotFound),
		errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrPassengerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRoomAlreadyClaimed),
		errors.Is(err, domain.ErrDuplicateCode),
		errors.Is(err, domain.ErrDuplicateDNI):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
