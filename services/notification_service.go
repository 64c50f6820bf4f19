package services

import (
	"log"
	"time"

	"stays-backend/models"
	"stays-backend/utils"

	"gorm.io/gorm"
)

// Notification types recorded in email_notifications.
const (
	NotifyBookingConfirmation = "booking_confirmation"
	NotifyBookingCancelled    = "booking_cancelled"
	NotifyContactAck          = "contact_acknowledgement"
)

// NotificationService records every outbound e-mail and sends it
// best-effort. A failed send never fails the operation that triggered it.
type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

func (n *NotificationService) Send(recipient, notifType, subject, content string) {
	record := models.EmailNotification{
		RecipientEmail:   recipient,
		NotificationType: notifType,
		Subject:          subject,
		Content:          content,
		Status:           models.EmailPending,
	}
	if err := n.DB.Create(&record).Error; err != nil {
		log.Printf("warning: failed to record %s notification: %v", notifType, err)
		return
	}

	if err := utils.SendMail(recipient, subject, content); err != nil {
		log.Printf("warning: %s e-mail to %s failed: %v", notifType, recipient, err)
		_ = n.DB.Model(&record).Update("status", models.EmailFailed).Error
		return
	}

	now := time.Now().UTC()
	_ = n.DB.Model(&record).Updates(map[string]interface{}{
		"status":  models.EmailSent,
		"sent_at": now,
	}).Error
}
