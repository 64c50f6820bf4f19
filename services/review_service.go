package services

import (
	"errors"
	"log"
	"strings"

	"stays-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewService manages guest reviews of completed stays.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// CreateReview records a review for the caller's own completed booking
// and folds the rating into the room's denormalized aggregate, in one
// transaction.
func (s *ReviewService) CreateReview(userID, bookingID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	var review models.Review
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if booking.UserID != userID {
			return ErrNotBookingOwner
		}
		if booking.Status != models.BookingCompleted {
			return ErrBookingNotCompleted
		}

		var existing models.Review
		if err := tx.Where("booking_id = ?", bookingID).First(&existing).Error; err == nil {
			return ErrAlreadyReviewed
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		review = models.Review{
			BookingID: bookingID,
			RoomID:    booking.RoomID,
			UserID:    userID,
			Rating:    rating,
			Comment:   strings.TrimSpace(comment),
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, booking.RoomID).Error; err != nil {
			return err
		}
		newCount := room.ReviewCount + 1
		newRating := (room.Rating*float64(room.ReviewCount) + float64(rating)) / float64(newCount)
		return tx.Model(&room).Updates(map[string]interface{}{
			"rating":       newRating,
			"review_count": newCount,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByRoom returns a room's reviews. A store failure degrades to an
// empty list so the room page still renders.
func (s *ReviewService) ListByRoom(roomID uint) []models.Review {
	var reviews []models.Review
	if err := s.DB.Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		log.Printf("warning: failed to load reviews for room %d: %v", roomID, err)
		return []models.Review{}
	}
	return reviews
}
