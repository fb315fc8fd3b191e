package api

import (
	"net/http"
	"strconv"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/service/hotels"
	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	service hotels.HotelUseCase
}

type hotelRequest struct {
	HotelCode       string  `json:"hotel_code"`
	Name            string  `json:"name"`
	Place           string  `json:"place"`
	SingleRoomsQ    int     `json:"single_rooms_q"`
	DoubleRoomsQ    int     `json:"double_rooms_q"`
	SingleRoomPrice float64 `json:"single_room_price"`
	DoubleRoomPrice float64 `json:"double_room_price"`
}

type hotelResponse struct {
	ID              int64   `json:"id"`
	HotelCode       string  `json:"hotel_code"`
	Name            string  `json:"name"`
	Place           string  `json:"place"`
	SingleRoomsQ    int     `json:"single_rooms_q"`
	DoubleRoomsQ    int     `json:"double_rooms_q"`
	SingleRoomPrice float64 `json:"single_room_price"`
	DoubleRoomPrice float64 `json:"double_room_price"`
}

func NewHotelHandler(service hotels.HotelUseCase) *HotelHandler {
	return &HotelHandler{service: service}
}

func (h *HotelHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/availability", h.availability)
	router.POST("/", h.create)
	router.PUT("/:id", h.edit)
	router.DELETE("/:id", h.deactivate)
}

func (h *HotelHandler) list(c *gin.Context) {
	hotelList, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]hotelResponse, 0, len(hotelList))
	for _, hotel := range hotelList {
		resp = append(resp, toHotelResponse(hotel))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HotelHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	hotel, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toHotelResponse(*hotel))
}

func (h *HotelHandler) availability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	availability, err := h.service.Availability(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hotel_id":     availability.HotelID,
		"double_rooms": availability.DoubleRooms,
		"single_rooms": availability.SingleRooms,
	})
}

func (h *HotelHandler) create(c *gin.Context) {
	var req hotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hotel, err := h.service.Create(c.Request.Context(), toHotelInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toHotelResponse(*hotel))
}

func (h *HotelHandler) edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req hotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hotel, err := h.service.Edit(c.Request.Context(), id, toHotelInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toHotelResponse(*hotel))
}

func (h *HotelHandler) deactivate(c *gin.Context) {
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

func toHotelInput(req hotelRequest) hotels.HotelInput {
	return hotels.HotelInput{
		HotelCode:       req.HotelCode,
		Name:            req.Name,
		Place:           req.Place,
		SingleRoomsQ:    req.SingleRoomsQ,
		DoubleRoomsQ:    req.DoubleRoomsQ,
		SingleRoomPrice: req.SingleRoomPrice,
		DoubleRoomPrice: req.DoubleRoomPrice,
	}
}

func toHotelResponse(hotel domain.Hotel) hotelResponse {
	return hotelResponse{
		ID:              hotel.ID,
		HotelCode:       hotel.HotelCode,
		Name:            hotel.Name,
		Place:           hotel.Place,
		SingleRoomsQ:    hotel.SingleRoomsQ,
		DoubleRoomsQ:    hotel.DoubleRoomsQ,
		SingleRoomPrice: hotel.SingleRoomPrice,
		DoubleRoomPrice: hotel.DoubleRoomPrice,
	}
}
