package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avelez-dev/agencia-backend/api"
	"github.com/avelez-dev/agencia-backend/config"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by Run.
type Handlers struct {
	Hotels         *api.HotelHandler
	Flights        *api.FlightHandler
	Rooms          *api.RoomHandler
	Passengers     *api.PassengerHandler
	RoomBookings   *api.RoomBookingHandler
	FlightBookings *api.FlightBookingHandler
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, handlers Handlers) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(handlers),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(handlers Handlers) *gin.Engine {
	router := gin.Default()

	hotels := router.Group("/hotels")
	handlers.Hotels.Register(hotels)
	handlers.Rooms.RegisterHotelRoutes(hotels)

	handlers.Flights.Register(router.Group("/flights"))
	handlers.Rooms.Register(router.Group("/rooms"))
	handlers.Passengers.Register(router.Group("/passengers"))
	handlers.RoomBookings.Register(router.Group("/room-bookings"))
	handlers.FlightBookings.Register(router.Group("/flight-bookings"))

	return router
}
