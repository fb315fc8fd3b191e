package api

import (
	"net/http"
	"strconv"

	"github.com/avelez-dev/agencia-backend/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type FlightBookingHandler struct {
	service booking.FlightBookingUseCase
}

type flightBookingRequest struct {
	Date          string  `json:"date"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	PeopleQ       int     `json:"people_q"`
	TouristSeats  int     `json:"tourist_seats"`
	BusinessSeats int     `json:"business_seats"`
	PassengerIDs  []int64 `json:"passenger_ids"`
}

type flightBookingResponse struct {
	ID            int64   `json:"id"`
	Code          string  `json:"code"`
	FlightID      int64   `json:"flight_id"`
	FlightNumber  string  `json:"flight_number"`
	FlightName    string  `json:"flight_name"`
	Date          string  `json:"date"`
	PeopleQ       int     `json:"people_q"`
	TouristSeats  int     `json:"tourist_seats"`
	BusinessSeats int     `json:"business_seats"`
	PassengerIDs  []int64 `json:"passenger_ids"`
	TotalCost     float64 `json:"total_cost"`
}

func NewFlightBookingHandler(service booking.FlightBookingUseCase) *FlightBookingHandler {
	return &FlightBookingHandler{service: service}
}

func (h *FlightBookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.edit)
	router.DELETE("/:id", h.remove)
}

func (h *FlightBookingHandler) list(c *gin.Context) {
	results, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]flightBookingResponse, 0, len(results))
	for i := range results {
		resp = append(resp, toFlightBookingResponse(&results[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightBookingHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightBookingResponse(result))
}

func (h *FlightBookingHandler) create(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}
	result, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightBookingResponse(result))
}

func (h *FlightBookingHandler) edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	input, ok := h.bindInput(c)
	if !ok {
		return
	}
	result, err := h.service.Edit(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightBookingResponse(result))
}

func (h *FlightBookingHandler) remove(c *gin.Context) {
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

func (h *FlightBookingHandler) bindInput(c *gin.Context) (booking.FlightBookingInput, bool) {
	var req flightBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return booking.FlightBookingInput{}, false
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return booking.FlightBookingInput{}, false
	}
	return booking.FlightBookingInput{
		Date:          date,
		Origin:        req.Origin,
		Destination:   req.Destination,
		PeopleQ:       req.PeopleQ,
		TouristSeats:  req.TouristSeats,
		BusinessSeats: req.BusinessSeats,
		PassengerIDs:  req.PassengerIDs,
	}, true
}

func toFlightBookingResponse(result *booking.FlightBookingResult) flightBookingResponse {
	return flightBookingResponse{
		ID:            result.ID,
		Code:          result.Code,
		FlightID:      result.FlightID,
		FlightNumber:  result.FlightNumber,
		FlightName:    result.FlightName,
		Date:          formatDate(result.Date),
		PeopleQ:       result.PeopleQ,
		TouristSeats:  result.TouristSeats,
		BusinessSeats: result.BusinessSeats,
		PassengerIDs:  result.PassengerIDs,
		TotalCost:     result.TotalCost,
	}
}
