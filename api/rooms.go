package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/avelez-dev/agencia-backend/internal/domain"
	"github.com/avelez-dev/agencia-backend/internal/service/rooms"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service rooms.RoomUseCase
}

type roomRequest struct {
	RoomType      string `json:"room_type"`
	AvailableFrom string `json:"available_from"`
	AvailableTo   string `json:"available_to"`
	HotelID       int64  `json:"hotel_id"`
}

type roomResponse struct {
	ID            int64  `json:"id"`
	RoomType      string `json:"room_type"`
	AvailableFrom string `json:"available_from"`
	AvailableTo   string `json:"available_to"`
	HotelID       int64  `json:"hotel_id"`
	BookingID     *int64 `json:"booking_id,omitempty"`
}

func NewRoomHandler(service rooms.RoomUseCase) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.GET("/available", h.available)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

// RegisterHotelRoutes mounts the per-hotel room listing under the hotels
// group.
func (h *RoomHandler) RegisterHotelRoutes(router *gin.RouterGroup) {
	router.GET("/:id/rooms", h.listByHotel)
}

// available searches unclaimed rooms by destination and window, optionally
// narrowed to one room type.
func (h *RoomHandler) available(c *gin.Context) {
	from, err := parseDate(c.Query("date_from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_from"})
		return
	}
	to, err := parseDate(c.Query("date_to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_to"})
		return
	}
	destination := c.Query("destination")
	if destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "destination is required"})
		return
	}

	var found []domain.Room
	if roomType := c.Query("room_type"); roomType != "" {
		found, err = h.service.FindAvailableByTypeAndDestination(c.Request.Context(), domain.RoomType(strings.ToUpper(roomType)), from, to, destination)
	} else {
		found, err = h.service.FindAvailableByDestination(c.Request.Context(), from, to, destination)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponses(found))
}

func (h *RoomHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	room, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(*room))
}

func (h *RoomHandler) listByHotel(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	roomList, err := h.service.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponses(roomList))
}

func (h *RoomHandler) create(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}
	room, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRoomResponse(*room))
}

func (h *RoomHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	input, ok := h.bindInput(c)
	if !ok {
		return
	}
	room, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(*room))
}

func (h *RoomHandler) remove(c *gin.Context) {
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

func (h *RoomHandler) bindInput(c *gin.Context) (rooms.RoomInput, bool) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return rooms.RoomInput{}, false
	}
	from, err := parseDate(req.AvailableFrom)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid available_from"})
		return rooms.RoomInput{}, false
	}
	to, err := parseDate(req.AvailableTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid available_to"})
		return rooms.RoomInput{}, false
	}
	return rooms.RoomInput{
		RoomType:      domain.RoomType(strings.ToUpper(req.RoomType)),
		AvailableFrom: from,
		AvailableTo:   to,
		HotelID:       req.HotelID,
	}, true
}

func toRoomResponse(room domain.Room) roomResponse {
	return roomResponse{
		ID:            room.ID,
		RoomType:      string(room.RoomType),
		AvailableFrom: formatDate(room.AvailableFrom),
		AvailableTo:   formatDate(room.AvailableTo),
		HotelID:       room.HotelID,
		BookingID:     room.BookingID,
	}
}

func toRoomResponses(roomList []domain.Room) []roomResponse {
	resp := make([]roomResponse, 0, len(roomList))
	for _, room := range roomList {
		resp = append(resp, toRoomResponse(room))
	}
	return resp
}
