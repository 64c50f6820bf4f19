package controllers

import (
	"net/http"

	"stays-backend/services"
	"stays-backend/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	Contact *services.ContactService
}

func NewContactController(contact *services.ContactService) *ContactController {
	return &ContactController{Contact: contact}
}

type contactPayload struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CreateMessage -> POST /api/contact
func (ctl *ContactController) CreateMessage(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	msg, err := ctl.Contact.CreateMessage(services.ContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, msg)
}
