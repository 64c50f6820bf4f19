package services

import (
	"errors"
	"fmt"
	"strings"

	"stays-backend/metrics"
	"stays-backend/models"

	"gorm.io/gorm"
)

// ContactService handles the public contact form and its moderation.
type ContactService struct {
	DB       *gorm.DB
	Notifier *NotificationService
}

func NewContactService(db *gorm.DB, notifier *NotificationService) *ContactService {
	return &ContactService{DB: db, Notifier: notifier}
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (s *ContactService) CreateMessage(in ContactInput) (*models.ContactMessage, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" || in.Email == "" || in.Subject == "" || in.Message == "" {
		return nil, fmt.Errorf("%w: name, email, subject and message are required", ErrValidation)
	}

	msg := models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   strings.TrimSpace(in.Phone),
		Subject: in.Subject,
		Message: in.Message,
		Status:  models.ContactNew,
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, err
	}

	metrics.RecordContactMessage()
	s.Notifier.Send(msg.Email, NotifyContactAck,
		"We received your message",
		fmt.Sprintf("Hi %s,\n\nThanks for reaching out about %q. Our team will get back to you shortly.\n\nStays Hotel", msg.Name, msg.Subject))

	return &msg, nil
}

func (s *ContactService) ListMessages(status string) ([]models.ContactMessage, error) {
	q := s.DB.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var messages []models.ContactMessage
	err := q.Find(&messages).Error
	return messages, err
}

// SetStatus advances a message along new -> replied -> resolved. Any
// other move is rejected and the current status stays put.
func (s *ContactService) SetStatus(id uint, newStatus string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&msg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !models.CanTransitionContact(msg.Status, newStatus) {
			return ErrInvalidTransition
		}
		if err := tx.Model(&msg).Update("status", newStatus).Error; err != nil {
			return err
		}
		msg.Status = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
