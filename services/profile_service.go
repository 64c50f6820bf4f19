package services

import (
	"errors"

	"stays-backend/loyalty"
	"stays-backend/models"

	"gorm.io/gorm"
)

// ProfileService reads and updates guest profiles and derives their
// loyalty standing.
type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

func (s *ProfileService) GetProfile(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial update. Identity and the loyalty
// balance are server-managed and stripped from the payload.
func (s *ProfileService) UpdateProfile(userID uint, updates map[string]interface{}) (*models.Profile, error) {
	delete(updates, "id")
	delete(updates, "user_id")
	delete(updates, "loyalty_points")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetProfile(userID)
}

// LoyaltySummary is the derived, read-only loyalty view.
type LoyaltySummary struct {
	Points             int64        `json:"points"`
	Tier               loyalty.Tier `json:"tier"`
	DiscountPercent    int          `json:"discount_percent"`
	PointsToNextReward int64        `json:"points_to_next_reward"`
	FreeNights         int64        `json:"free_nights"`
	RewardValue        int64        `json:"reward_value"` // kobo
}

func (s *ProfileService) Loyalty(userID uint) (*LoyaltySummary, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	points := profile.LoyaltyPoints
	tier := loyalty.TierFor(points)
	return &LoyaltySummary{
		Points:             points,
		Tier:               tier,
		DiscountPercent:    loyalty.DiscountPercent(tier),
		PointsToNextReward: loyalty.PointsToNextReward(points),
		FreeNights:         loyalty.FreeNights(points),
		RewardValue:        loyalty.RewardValue(points),
	}, nil
}
