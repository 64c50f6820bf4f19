package services

import (
	"database/sql"
	"testing"
	"time"

	"stays-backend/config"
	"stays-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// newTestDB opens an isolated in-memory store with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newBookingService(t *testing.T, db *gorm.DB) *BookingService {
	t.Helper()
	payments := &PaymentService{Delay: 0}
	return NewBookingService(db, payments, NewNotificationService(db))
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID}).Error)
	return user
}

func seedRoom(t *testing.T, db *gorm.DB, pricePerNight int64, capacity int) models.Room {
	t.Helper()
	room := models.Room{
		Name:          "Deluxe Room",
		RoomType:      models.RoomTypeDeluxe,
		PricePerNight: pricePerNight,
		Capacity:      capacity,
		IsAvailable:   true,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(DateLayout)
}
