package controllers

import (
	"net/http"

	"stays-backend/middleware"
	"stays-backend/services"
	"stays-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Profiles *services.ProfileService
	Reviews  *services.ReviewService
}

func NewProfileController(profiles *services.ProfileService, reviews *services.ReviewService) *ProfileController {
	return &ProfileController{Profiles: profiles, Reviews: reviews}
}

// GetProfile -> GET /api/profile
func (ctl *ProfileController) GetProfile(c *gin.Context) {
	profile, err := ctl.Profiles.GetProfile(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}

// UpdateProfile -> PUT /api/profile
func (ctl *ProfileController) UpdateProfile(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	profile, err := ctl.Profiles.UpdateProfile(middleware.UserID(c), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}

// GetLoyalty -> GET /api/loyalty
func (ctl *ProfileController) GetLoyalty(c *gin.Context) {
	summary, err := ctl.Profiles.Loyalty(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

type reviewPayload struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// CreateReview -> POST /api/reviews
func (ctl *ProfileController) CreateReview(c *gin.Context) {
	var payload reviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	review, err := ctl.Reviews.CreateReview(middleware.UserID(c), payload.BookingID, payload.Rating, payload.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}
