package services

import (
	"context"
	"testing"

	"stays-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewRequiresCompletedStay(t *testing.T) {
	db := newTestDB(t)
	bookings := newBookingService(t, db)
	reviews := NewReviewService(db)
	user := seedUser(t, db, "guest@example.com")
	stranger := seedUser(t, db, "stranger@example.com")
	room := seedRoom(t, db, 45000*100, 2)

	booking, err := bookings.CreateBooking(context.Background(), user.ID, CreateBookingInput{
		RoomID: room.ID, CheckIn: futureDate(5), CheckOut: futureDate(7), Guests: 1,
	})
	require.NoError(t, err)

	_, err = reviews.CreateReview(user.ID, booking.ID, 5, "lovely")
	assert.ErrorIs(t, err, ErrBookingNotCompleted)

	_, err = bookings.SetStatus(booking.ID, models.BookingConfirmed)
	require.NoError(t, err)
	_, err = bookings.SetStatus(booking.ID, models.BookingCompleted)
	require.NoError(t, err)

	_, err = reviews.CreateReview(stranger.ID, booking.ID, 5, "not my stay")
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	_, err = reviews.CreateReview(user.ID, booking.ID, 6, "")
	assert.ErrorIs(t, err, ErrInvalidRating)

	review, err := reviews.CreateReview(user.ID, booking.ID, 4, "great view")
	require.NoError(t, err)
	assert.Equal(t, room.ID, review.RoomID)

	// One review per booking.
	_, err = reviews.CreateReview(user.ID, booking.ID, 5, "again")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	// The room aggregate is updated.
	var updated models.Room
	require.NoError(t, db.First(&updated, room.ID).Error)
	assert.Equal(t, 1, updated.ReviewCount)
	assert.InDelta(t, 4.0, updated.Rating, 0.001)
}

func TestListByRoomDegradesToEmpty(t *testing.T) {
	db := newTestDB(t)
	reviews := NewReviewService(db)

	// No reviews yet: empty, not nil.
	list := reviews.ListByRoom(1)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestLoyaltySummaryAfterStays(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileService(db)
	user := seedUser(t, db, "guest@example.com")

	require.NoError(t, db.Model(&models.Profile{}).
		Where("user_id = ?", user.ID).
		Update("loyalty_points", 250).Error)

	summary, err := profiles.Loyalty(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), summary.Points)
	assert.Equal(t, "bronze", string(summary.Tier))
	assert.Equal(t, 5, summary.DiscountPercent)
	assert.Equal(t, int64(50), summary.PointsToNextReward)
	assert.Equal(t, int64(2), summary.FreeNights)
	assert.Equal(t, int64(2_500_000*100), summary.RewardValue)
}
