package services

import (
	"errors"
	"fmt"
	"strings"

	"stays-backend/models"

	"gorm.io/gorm"
)

// RoomService wraps *gorm.DB for catalog operations.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomFilter narrows the public catalog listing. Zero values mean "no
// filter". Prices are kobo.
type RoomFilter struct {
	RoomType      string
	MinPrice      int64
	MaxPrice      int64
	Guests        int
	AvailableOnly bool
}

func (s *RoomService) ListRooms(f RoomFilter) ([]models.Room, error) {
	q := s.DB.Model(&models.Room{})
	if f.RoomType != "" {
		q = q.Where("room_type = ?", f.RoomType)
	}
	if f.MinPrice > 0 {
		q = q.Where("price_per_night >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", f.MaxPrice)
	}
	if f.Guests > 0 {
		q = q.Where("capacity >= ?", f.Guests)
	}
	if f.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}

	var rooms []models.Room
	if err := q.Order("price_per_night ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

func validateRoom(room *models.Room) error {
	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !models.ValidRoomType(room.RoomType) {
		return fmt.Errorf("%w: unknown room type %q", ErrValidation, room.RoomType)
	}
	if room.PricePerNight <= 0 {
		return fmt.Errorf("%w: price per night must be positive", ErrValidation)
	}
	if room.OriginalPrice != nil && *room.OriginalPrice < room.PricePerNight {
		return fmt.Errorf("%w: original price must not undercut the nightly price", ErrValidation)
	}
	if room.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
	}
	return nil
}

func (s *RoomService) CreateRoom(room *models.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	return s.DB.Create(room).Error
}

// UpdateRoom applies a partial update. Identity and audit fields are
// stripped so a payload can never rewrite them, and the merged record
// must still satisfy the same rules as a freshly created room.
func (s *RoomService) UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error) {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")
	delete(updates, "rating")
	delete(updates, "review_count")

	var updated models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Model(&room).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.First(&updated, id).Error; err != nil {
			return err
		}
		return validateRoom(&updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRoom removes a room from the catalog. A room referenced by any
// booking is never deleted; callers should disable it instead.
func (s *RoomService) DeleteRoom(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var refs int64
		if err := tx.Model(&models.Booking{}).Where("room_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrRoomReferenced
		}

		return tx.Delete(&room).Error
	})
}
