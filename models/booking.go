package models

import (
	"time"
)

// Booking statuses. Cancelled and completed are terminal.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Payment statuses, mirrored from the payment collaborator.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// bookingTransitions is the lifecycle graph. Anything not listed is an
// invalid transition.
var bookingTransitions = map[string][]string{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCancelled, BookingCompleted},
}

// CanTransitionBooking reports whether a booking may move from -> to.
func CanTransitionBooking(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// BookingTerminal reports whether s permits no further transitions.
func BookingTerminal(s string) bool {
	return s == BookingCancelled || s == BookingCompleted
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	RoomID        uint   `gorm:"column:room_id;index" json:"room_id"`
	UserID        uint   `gorm:"column:user_id;index" json:"user_id"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"check_out_date"`
	Guests       int       `json:"guests"`
	Nights       int       `json:"nights"`

	// TotalAmount is kobo, derived from the quote at creation time.
	TotalAmount int64 `gorm:"column:total_amount" json:"total_amount"`

	Status           string  `gorm:"size:32;default:pending;index" json:"status"`
	PaymentStatus    string  `gorm:"column:payment_status;size:32;default:pending" json:"payment_status"`
	PaymentReference *string `gorm:"column:payment_reference;size:128" json:"payment_reference,omitempty"`
	SpecialRequests  string  `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
