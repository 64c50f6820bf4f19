package controllers

import (
	"net/http"
	"strconv"

	"stays-backend/services"
	"stays-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms    *services.RoomService
	Bookings *services.BookingService
	Reviews  *services.ReviewService
}

func NewRoomController(rooms *services.RoomService, bookings *services.BookingService, reviews *services.ReviewService) *RoomController {
	return &RoomController{Rooms: rooms, Bookings: bookings, Reviews: reviews}
}

// ListRooms -> GET /api/rooms
// Filters: type, min_price, max_price (kobo), guests, available.
func (ctl *RoomController) ListRooms(c *gin.Context) {
	filter := services.RoomFilter{RoomType: c.Query("type")}
	if v, err := strconv.ParseInt(c.Query("min_price"), 10, 64); err == nil {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseInt(c.Query("max_price"), 10, 64); err == nil {
		filter.MaxPrice = v
	}
	if v, err := strconv.Atoi(c.Query("guests")); err == nil {
		filter.Guests = v
	}
	filter.AvailableOnly = c.Query("available") == "true"

	rooms, err := ctl.Rooms.ListRooms(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetRoom -> GET /api/rooms/:id
func (ctl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	room, err := ctl.Rooms.GetRoom(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// GetRoomReviews -> GET /api/rooms/:id/reviews
// Degrades to an empty list on store failure rather than blocking the
// room page.
func (ctl *RoomController) GetRoomReviews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctl.Reviews.ListByRoom(id))
}

// CheckAvailability -> GET /api/rooms/:id/availability?check_in=&check_out=
func (ctl *RoomController) CheckAvailability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ci, co, err := services.ParseStayDates(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := ctl.Rooms.GetRoom(id); err != nil {
		respondError(c, err)
		return
	}

	available, err := ctl.Bookings.IsRoomAvailable(id, ci, co)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"available": available})
}

type quotePayload struct {
	RoomID   uint   `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

// Quote -> POST /api/quotes
// Live re-quote for the booking form; pure computation, nothing stored.
func (ctl *RoomController) Quote(c *gin.Context) {
	var payload quotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	quote, err := ctl.Bookings.QuoteForRoom(payload.RoomID, payload.CheckIn, payload.CheckOut)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quote)
}
