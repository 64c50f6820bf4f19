package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room types offered by the hotel.
const (
	RoomTypeStandard     = "standard"
	RoomTypeDeluxe       = "deluxe"
	RoomTypeSuite        = "suite"
	RoomTypeFamily       = "family"
	RoomTypeBusiness     = "business"
	RoomTypePresidential = "presidential"
)

// ValidRoomType reports whether t is one of the offered room types.
func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite,
		RoomTypeFamily, RoomTypeBusiness, RoomTypePresidential:
		return true
	}
	return false
}

type Room struct {
	gorm.Model

	Name     string `json:"name" gorm:"size:255"`
	RoomType string `json:"room_type" gorm:"column:room_type;size:32;index"`

	// Prices are kobo (minor units). OriginalPrice, when set, is the
	// pre-discount price and must be >= PricePerNight.
	PricePerNight int64  `json:"price_per_night" gorm:"column:price_per_night"`
	OriginalPrice *int64 `json:"original_price,omitempty" gorm:"column:original_price"`

	Capacity    int            `json:"capacity"`
	Beds        string         `json:"beds,omitempty" gorm:"size:100"`
	Bathrooms   int            `json:"bathrooms,omitempty"`
	SizeSqm     int            `json:"size_sqm,omitempty" gorm:"column:size_sqm"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Amenities   datatypes.JSON `json:"amenities,omitempty"`
	Images      datatypes.JSON `json:"images,omitempty"`

	// Denormalized review aggregate, maintained on review creation.
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count" gorm:"column:review_count"`

	IsAvailable bool `json:"is_available" gorm:"column:is_available;default:true"`
}
