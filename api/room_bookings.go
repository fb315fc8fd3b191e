package api

import (
	"net/http"
	"strconv"

	"github.com/avelez-dev/agencia-backend/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type RoomBookingHandler struct {
	service booking.RoomBookingUseCase
}

type roomBookingRequest struct {
	DateFrom     string  `json:"date_from"`
	DateTo       string  `json:"date_to"`
	Nights       int     `json:"nights"`
	PeopleQ      int     `json:"people_q"`
	DoubleRoomQ  int     `json:"double_room_q"`
	SingleRoomQ  int     `json:"single_room_q"`
	Destination  string  `json:"destination"`
	PassengerIDs []int64 `json:"passenger_ids"`
}

type roomBookingResponse struct {
	ID            int64   `json:"id"`
	Code          string  `json:"code"`
	DoubleRoomIDs []int64 `json:"double_room_ids"`
	SingleRoomIDs []int64 `json:"single_room_ids"`
	PassengerIDs  []int64 `json:"passenger_ids"`
	TotalCost     float64 `json:"total_cost"`
}

type roomBookingDetailResponse struct {
	ID           int64   `json:"id"`
	Code         string  `json:"code"`
	DateFrom     string  `json:"date_from"`
	DateTo       string  `json:"date_to"`
	Nights       int     `json:"nights"`
	PeopleQ      int     `json:"people_q"`
	RoomIDs      []int64 `json:"room_ids"`
	PassengerIDs []int64 `json:"passenger_ids"`
}

func NewRoomBookingHandler(service booking.RoomBookingUseCase) *RoomBookingHandler {
	return &RoomBookingHandler{service: service}
}

func (h *RoomBookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.edit)
	router.DELETE("/:id", h.remove)
}

func (h *RoomBookingHandler) list(c *gin.Context) {
	details, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]roomBookingDetailResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, toRoomBookingDetailResponse(d))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoomBookingHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomBookingDetailResponse(*detail))
}

func (h *RoomBookingHandler) create(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}
	result, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRoomBookingResponse(result))
}

func (h *RoomBookingHandler) edit(c *gin.Context) {
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
	c.JSON(http.StatusOK, toRoomBookingResponse(result))
}

func (h *RoomBookingHandler) remove(c *gin.Context) {
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

func (h *RoomBookingHandler) bindInput(c *gin.Context) (booking.RoomBookingInput, bool) {
	var req roomBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return booking.RoomBookingInput{}, false
	}
	dateFrom, err := parseDate(req.DateFrom)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_from"})
		return booking.RoomBookingInput{}, false
	}
	dateTo, err := parseDate(req.DateTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_to"})
		return booking.RoomBookingInput{}, false
	}
	return booking.RoomBookingInput{
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		Nights:       req.Nights,
		PeopleQ:      req.PeopleQ,
		DoubleRoomQ:  req.DoubleRoomQ,
		SingleRoomQ:  req.SingleRoomQ,
		Destination:  req.Destination,
		PassengerIDs: req.PassengerIDs,
	}, true
}

func toRoomBookingResponse(result *booking.RoomBookingResult) roomBookingResponse {
	return roomBookingResponse{
		ID:            result.ID,
		Code:          result.Code,
		DoubleRoomIDs: result.DoubleRoomIDs,
		SingleRoomIDs: result.SingleRoomIDs,
		PassengerIDs:  result.PassengerIDs,
		TotalCost:     result.TotalCost,
	}
}

func toRoomBookingDetailResponse(detail booking.RoomBookingDetail) roomBookingDetailResponse {
	return roomBookingDetailResponse{
		ID:           detail.Booking.ID,
		Code:         detail.Booking.Code,
		DateFrom:     formatDate(detail.Booking.DateFrom),
		DateTo:       formatDate(detail.Booking.DateTo),
		Nights:       detail.Booking.Nights,
		PeopleQ:      detail.Booking.PeopleQ,
		RoomIDs:      detail.RoomIDs,
		PassengerIDs: detail.PassengerIDs,
	}
}
