package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"stays-backend/pricing"
	"stays-backend/services"

	"github.com/gin-gonic/gin"
	"stays-backend/utils"
)

// respondError maps service errors onto HTTP statuses. Unknown errors
// become a generic 500 so internals never leak to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrPastDates),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, pricing.ErrInvalidDateRange),
		errors.Is(err, pricing.ErrInvalidRate):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotBookingOwner):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrRoomReferenced),
		errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrRoomNotBookable),
		errors.Is(err, services.ErrCancellationWindow),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrAlreadyReviewed):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "something went wrong, please try again")
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
