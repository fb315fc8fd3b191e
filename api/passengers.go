package api

import (
	"net/http"
	"strconv"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/service/passengers"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service passengers.PassengerUseCase
}

type passengerRequest struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	DNI      string `json:"dni"`
}

type passengerResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	LastName        string `json:"last_name"`
	DNI             string `json:"dni"`
	RoomBookingID   *int64 `json:"room_booking_id,omitempty"`
	FlightBookingID *int64 `json:"flight_booking_id,omitempty"`
}

func NewPassengerHandler(service passengers.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *PassengerHandler) list(c *gin.Context) {
	passengerList, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]passengerResponse, 0, len(passengerList))
	for _, p := range passengerList {
		resp = append(resp, toPassengerResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PassengerHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(*p))
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.service.Create(c.Request.Context(), passengers.PassengerInput{
		Name:     req.Name,
		LastName: req.LastName,
		DNI:      req.DNI,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPassengerResponse(*p))
}

func (h *PassengerHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.service.Update(c.Request.Context(), id, passengers.PassengerInput{
		Name:     req.Name,
		LastName: req.LastName,
		DNI:      req.DNI,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(*p))
}

func (h *PassengerHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toPassengerResponse(p domain.Passenger) passengerResponse {
	return passengerResponse{
		ID:              p.ID,
		Name:            p.Name,
		LastName:        p.LastName,
		DNI:             p.DNI,
		RoomBookingID:   p.RoomBookingID,
		FlightBookingID: p.FlightBookingID,
	}
}
