package api

import (
	"net/http"
	"strconv"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	Name              string  `json:"name"`
	FlightNumber      string  `json:"flight_number"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	EconomySeatsQ     int     `json:"economy_seats_q"`
	BusinessSeatsQ    int     `json:"business_seats_q"`
	EconomySeatPrice  float64 `json:"economy_seat_price"`
	BusinessSeatPrice float64 `json:"business_seat_price"`
	DateFrom          string  `json:"date_from"`
	DateTo            string  `json:"date_to"`
}

type flightResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	FlightNumber      string  `json:"flight_number"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	EconomySeatsQ     int     `json:"economy_seats_q"`
	BusinessSeatsQ    int     `json:"business_seats_q"`
	EconomySeatPrice  float64 `json:"economy_seat_price"`
	BusinessSeatPrice float64 `json:"business_seat_price"`
	DateFrom          string  `json:"date_from"`
	DateTo            string  `json:"date_to"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.edit)
	router.DELETE("/:id", h.deactivate)
}

func (h *FlightHandler) list(c *gin.Context) {
	flightList, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]flightResponse, 0, len(flightList))
	for _, flight := range flightList {
		resp = append(resp, toFlightResponse(flight))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(*flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}
	flight, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightResponse(*flight))
}

func (h *FlightHandler) edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	input, ok := h.bindInput(c)
	if !ok {
		return
	}
	flight, err := h.service.Edit(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(*flight))
}

func (h *FlightHandler) deactivate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) bindInput(c *gin.Context) (flights.FlightInput, bool) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return flights.FlightInput{}, false
	}
	dateFrom, err := parseDate(req.DateFrom)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_from"})
		return flights.FlightInput{}, false
	}
	dateTo, err := parseDate(req.DateTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_to"})
		return flights.FlightInput{}, false
	}
	return flights.FlightInput{
		Name:              req.Name,
		FlightNumber:      req.FlightNumber,
		Origin:            req.Origin,
		Destination:       req.Destination,
		EconomySeatsQ:     req.EconomySeatsQ,
		BusinessSeatsQ:    req.BusinessSeatsQ,
		EconomySeatPrice:  req.EconomySeatPrice,
		BusinessSeatPrice: req.BusinessSeatPrice,
		DateFrom:          dateFrom,
		DateTo:            dateTo,
	}, true
}

func toFlightResponse(flight domain.Flight) flightResponse {
	return flightResponse{
		ID:                flight.ID,
		Name:              flight.Name,
		FlightNumber:      flight.FlightNumber,
		Origin:            flight.Origin,
		Destination:       flight.Destination,
		EconomySeatsQ:     flight.EconomySeatsQ,
		BusinessSeatsQ:    flight.BusinessSeatsQ,
		EconomySeatPrice:  flight.EconomySeatPrice,
		BusinessSeatPrice: flight.BusinessSeatPrice,
		DateFrom:          formatDate(flight.DateFrom),
		DateTo:            formatDate(flight.DateTo),
	}
}
