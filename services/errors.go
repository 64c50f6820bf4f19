package services

import "errors"

// Service-level errors. Controllers map these onto HTTP statuses; the
// wording is what ends up in the API response.
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")

	// Booking
	ErrPastDates          = errors.New("check-in and check-out must not be in the past")
	ErrCapacityExceeded   = errors.New("guest count exceeds room capacity")
	ErrRoomNotBookable    = errors.New("room is not open for booking")
	ErrRoomUnavailable    = errors.New("room is already booked for the selected dates")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrNotBookingOwner    = errors.New("booking belongs to another user")
	ErrCancellationWindow = errors.New("cancellation is only possible up to 24 hours before check-in")

	// Rooms
	ErrRoomReferenced = errors.New("room has bookings and cannot be deleted; disable it instead")

	// Auth
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")

	// Reviews
	ErrBookingNotCompleted = errors.New("only completed stays can be reviewed")
	ErrAlreadyReviewed     = errors.New("booking has already been reviewed")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)
