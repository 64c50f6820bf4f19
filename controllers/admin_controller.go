package controllers

import (
	"net/http"

	"stays-backend/models"
	"stays-backend/services"
	"stays-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminController groups the moderation endpoints. Every route here sits
// behind the AdminRequired middleware.
type AdminController struct {
	Bookings *services.BookingService
	Contact  *services.ContactService
	Rooms    *services.RoomService
}

func NewAdminController(bookings *services.BookingService, contact *services.ContactService, rooms *services.RoomService) *AdminController {
	return &AdminController{Bookings: bookings, Contact: contact, Rooms: rooms}
}

// ListBookings -> GET /api/admin/bookings?status=
func (ctl *AdminController) ListBookings(c *gin.Context) {
	bookings, err := ctl.Bookings.ListAllBookings(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// SetBookingStatus -> PATCH /api/admin/bookings/:id/status
func (ctl *AdminController) SetBookingStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	booking, err := ctl.Bookings.SetStatus(id, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// ListContactMessages -> GET /api/admin/contact-messages?status=
func (ctl *AdminController) ListContactMessages(c *gin.Context) {
	messages, err := ctl.Contact.ListMessages(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, messages)
}

// SetContactStatus -> PATCH /api/admin/contact-messages/:id/status
func (ctl *AdminController) SetContactStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	msg, err := ctl.Contact.SetStatus(id, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, msg)
}

// CreateRoom -> POST /api/admin/rooms
func (ctl *AdminController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ctl.Rooms.CreateRoom(&room); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom -> PATCH /api/admin/rooms/:id
func (ctl *AdminController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	room, err := ctl.Rooms.UpdateRoom(id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom -> DELETE /api/admin/rooms/:id
// Rejected with a conflict while any booking references the room.
func (ctl *AdminController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctl.Rooms.DeleteRoom(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
