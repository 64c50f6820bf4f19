package controllers

import (
	"net/http"

	"stays-backend/middleware"
	"stays-backend/services"
	"stays-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type signUpPayload struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type signInPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUp -> POST /api/auth/signup
func (ctl *AuthController) SignUp(c *gin.Context) {
	var payload signUpPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, token, err := ctl.Auth.SignUp(services.SignUpInput{
		Email:     payload.Email,
		Password:  payload.Password,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Phone:     payload.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

// SignIn -> POST /api/auth/login
func (ctl *AuthController) SignIn(c *gin.Context) {
	var payload signInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, token, err := ctl.Auth.SignIn(payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user, "token": token})
}

// Me -> GET /api/auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	userID := middleware.UserID(c)
	user, err := ctl.Auth.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	admin, err := ctl.Auth.AdminFor(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user, "is_admin": admin != nil})
}
