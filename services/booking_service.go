package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"stays-backend/loyalty"
	"stays-backend/metrics"
	"stays-backend/models"
	"stays-backend/pricing"
	"stays-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DateLayout is the wire format for stay dates.
const DateLayout = "2006-01-02"

// cancellationCutoff is how long before check-in a guest may still cancel
// a confirmed booking. Admins are not bound by it.
const cancellationCutoff = 24 * time.Hour

// BookingService wraps *gorm.DB and the payment/notification
// collaborators for the reservation lifecycle.
type BookingService struct {
	DB       *gorm.DB
	Payments *PaymentService
	Notifier *NotificationService
}

func NewBookingService(db *gorm.DB, payments *PaymentService, notifier *NotificationService) *BookingService {
	return &BookingService{DB: db, Payments: payments, Notifier: notifier}
}

type CreateBookingInput struct {
	RoomID          uint
	CheckIn         string
	CheckOut        string
	Guests          int
	SpecialRequests string
}

// ParseStayDates parses and sanity-checks a check-in/check-out pair.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid check-in date", ErrValidation)
	}
	co, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid check-out date", ErrValidation)
	}
	return ci, co, nil
}

// QuoteForRoom computes a live quote for a prospective stay.
func (s *BookingService) QuoteForRoom(roomID uint, checkIn, checkOut string) (pricing.Quote, error) {
	ci, co, err := ParseStayDates(checkIn, checkOut)
	if err != nil {
		return pricing.Quote{}, err
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.Quote{}, ErrNotFound
		}
		return pricing.Quote{}, err
	}

	return pricing.ComputeQuote(room.PricePerNight, ci, co)
}

// IsRoomAvailable reports whether the room has no pending or confirmed
// booking overlapping [checkIn, checkOut). Half-open semantics: a
// check-out on day X does not conflict with a check-in on day X.
func (s *BookingService) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, pricing.ErrInvalidDateRange
	}
	return roomAvailable(s.DB, roomID, checkIn, checkOut)
}

func roomAvailable(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ?", roomID, []string{models.BookingPending, models.BookingConfirmed}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// CreateBooking validates the stay, computes the quote, checks
// availability and persists the booking in one transaction. The payment
// charge happens after commit and only mirrors its result onto the
// booking, the way the external gateway would.
func (s *BookingService) CreateBooking(ctx context.Context, userID uint, in CreateBookingInput) (*models.Booking, error) {
	ci, co, err := ParseStayDates(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if ci.Before(today) || co.Before(today) {
		return nil, ErrPastDates
	}
	if in.Guests < 1 {
		return nil, fmt.Errorf("%w: at least one guest is required", ErrValidation)
	}

	var booking models.Booking
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !room.IsAvailable {
			return ErrRoomNotBookable
		}
		if in.Guests > room.Capacity {
			return ErrCapacityExceeded
		}

		quote, err := pricing.ComputeQuote(room.PricePerNight, ci, co)
		if err != nil {
			return err
		}

		available, err := roomAvailable(tx, room.ID, ci, co)
		if err != nil {
			return err
		}
		if !available {
			return ErrRoomUnavailable
		}

		ref, err := utils.GenerateBookingReference(8)
		if err != nil {
			return fmt.Errorf("failed to generate reference: %w", err)
		}

		booking = models.Booking{
			ReferenceCode:   ref,
			RoomID:          room.ID,
			UserID:          userID,
			CheckInDate:     ci,
			CheckOutDate:    co,
			Guests:          in.Guests,
			Nights:          quote.Nights,
			TotalAmount:     quote.Total,
			Status:          models.BookingPending,
			PaymentStatus:   models.PaymentPending,
			SpecialRequests: in.SpecialRequests,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBookingCreated()
	s.settlePayment(ctx, &booking)

	if err := s.DB.Preload("Room").First(&booking, booking.ID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// settlePayment charges the gateway and mirrors the result onto the
// booking. A cancelled context leaves payment_status pending; the guest
// can retry or an admin can reconcile later.
func (s *BookingService) settlePayment(ctx context.Context, booking *models.Booking) {
	var email string
	var user models.User
	if err := s.DB.First(&user, booking.UserID).Error; err == nil {
		email = user.Email
	}

	result, err := s.Payments.Charge(ctx, booking.TotalAmount, email)
	if err != nil {
		log.Printf("warning: payment charge for booking %s did not complete: %v", booking.ReferenceCode, err)
		return
	}

	updates := map[string]interface{}{
		"payment_status":    result.Status,
		"payment_reference": result.Reference,
	}
	if err := s.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).Updates(updates).Error; err != nil {
		log.Printf("warning: failed to record payment result for booking %s: %v", booking.ReferenceCode, err)
		return
	}
	booking.PaymentStatus = result.Status
	booking.PaymentReference = &result.Reference
}

// SetStatus is the admin moderation entry point. The transition is
// validated against the lifecycle graph; cancelling a paid booking flips
// payment_status to refunded and completing one accrues loyalty points,
// all in the same transaction.
func (s *BookingService) SetStatus(bookingID uint, newStatus string) (*models.Booking, error) {
	if !models.ValidBookingStatus(newStatus) {
		return nil, ErrInvalidTransition
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return applyTransition(tx, &booking, newStatus)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBookingTransition(newStatus)
	s.notifyTransition(&booking)
	return &booking, nil
}

// CancelOwnBooking lets a guest cancel their own booking. Pending
// bookings cancel any time; confirmed ones only until 24 hours before
// check-in.
func (s *BookingService) CancelOwnBooking(userID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if booking.UserID != userID {
			return ErrNotBookingOwner
		}
		if booking.Status == models.BookingConfirmed &&
			time.Now().UTC().After(booking.CheckInDate.Add(-cancellationCutoff)) {
			return ErrCancellationWindow
		}
		return applyTransition(tx, &booking, models.BookingCancelled)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBookingTransition(models.BookingCancelled)
	s.notifyTransition(&booking)
	return &booking, nil
}

// applyTransition mutates a locked booking inside tx. It is the single
// place lifecycle edges, the refund compensation and loyalty accrual are
// applied.
func applyTransition(tx *gorm.DB, booking *models.Booking, newStatus string) error {
	if !models.CanTransitionBooking(booking.Status, newStatus) {
		return ErrInvalidTransition
	}

	updates := map[string]interface{}{"status": newStatus}

	// A paid booking being cancelled must come out refunded, never
	// stranded as paid+cancelled.
	if newStatus == models.BookingCancelled && booking.PaymentStatus == models.PaymentPaid {
		updates["payment_status"] = models.PaymentRefunded
	}

	if err := tx.Model(booking).Updates(updates).Error; err != nil {
		return err
	}

	if newStatus == models.BookingCompleted {
		points := loyalty.PointsForSpend(booking.TotalAmount)
		if points > 0 {
			if err := tx.Model(&models.Profile{}).
				Where("user_id = ?", booking.UserID).
				UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error; err != nil {
				return err
			}
		}
	}

	booking.Status = newStatus
	if ps, ok := updates["payment_status"].(string); ok {
		booking.PaymentStatus = ps
	}
	return nil
}

func (s *BookingService) notifyTransition(booking *models.Booking) {
	var user models.User
	if err := s.DB.First(&user, booking.UserID).Error; err != nil {
		return
	}

	switch booking.Status {
	case models.BookingConfirmed:
		s.Notifier.Send(user.Email, NotifyBookingConfirmation,
			fmt.Sprintf("Booking %s confirmed", booking.ReferenceCode),
			fmt.Sprintf("Your reservation %s is confirmed for %s to %s. We look forward to hosting you.",
				booking.ReferenceCode,
				booking.CheckInDate.Format(DateLayout),
				booking.CheckOutDate.Format(DateLayout)))
	case models.BookingCancelled:
		s.Notifier.Send(user.Email, NotifyBookingCancelled,
			fmt.Sprintf("Booking %s cancelled", booking.ReferenceCode),
			fmt.Sprintf("Your reservation %s has been cancelled.", booking.ReferenceCode))
	}
}

func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) ListBookingsByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// ListAllBookings is the admin view, optionally filtered by status.
func (s *BookingService) ListAllBookings(status string) ([]models.Booking, error) {
	q := s.DB.Preload("Room").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var bookings []models.Booking
	err := q.Find(&bookings).Error
	return bookings, err
}
