package models

import "time"

// Review is a guest rating for a completed stay. One review per booking.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"column:booking_id;uniqueIndex" json:"booking_id"`
	RoomID    uint      `gorm:"column:room_id;index" json:"room_id"`
	UserID    uint      `gorm:"column:user_id;index" json:"user_id"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
