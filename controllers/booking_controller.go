package controllers

import (
	"net/http"

	"stays-backend/middleware"
	"stays-backend/services"
	"stays-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingPayload struct {
	RoomID          uint   `json:"room_id" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

// CreateBooking -> POST /api/bookings
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	booking, err := ctl.Bookings.CreateBooking(c.Request.Context(), middleware.UserID(c), services.CreateBookingInput{
		RoomID:          payload.RoomID,
		CheckIn:         payload.CheckIn,
		CheckOut:        payload.CheckOut,
		Guests:          payload.Guests,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// ListMyBookings -> GET /api/bookings
func (ctl *BookingController) ListMyBookings(c *gin.Context) {
	bookings, err := ctl.Bookings.ListBookingsByUser(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// CancelBooking -> POST /api/bookings/:id/cancel
func (ctl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	booking, err := ctl.Bookings.CancelOwnBooking(middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
