package config

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"stays-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // pure Go SQLite driver for the fallback store
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// resolveDialector picks MySQL when any DB env is configured, otherwise a
// local SQLite file so development works without a server.
func resolveDialector() (gorm.Dialector, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		dsn := raw
		if strings.HasPrefix(raw, "mysql://") {
			var err error
			dsn, err = mysqlDSNFromURL(raw)
			if err != nil {
				return nil, err
			}
		}
		return mysql.Open(dsn), nil
	}

	if os.Getenv("DB_HOST") != "" {
		user := envOrDefault("DB_USER", "root")
		pass := envOrDefault("DB_PASS", "")
		host := envOrDefault("DB_HOST", "127.0.0.1")
		port := envOrDefault("DB_PORT", "3306")
		dbName := envOrDefault("DB_NAME", "stays_db")

		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, dbName,
		)
		return mysql.Open(dsn), nil
	}

	dbPath := envOrDefault("SQLITE_PATH", "stays.db")
	log.Printf("No MySQL configuration found, using SQLite at %s", dbPath)
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	return sqlite.Dialector{DriverName: "sqlite", DSN: dbPath, Conn: sqlDB}, nil
}

func ConnectDatabase() error {
	dialector, err := resolveDialector()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// Migrate runs AutoMigrate in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.AdminUser{},
		&models.Room{},
		&models.Booking{},
		&models.Review{},
		&models.ContactMessage{},
		&models.EmailNotification{},
	)
}

func jsonList(items ...string) datatypes.JSON {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(fmt.Sprintf("%q", item))
	}
	sb.WriteByte(']')
	return datatypes.JSON(sb.String())
}

func naira(amount int64) int64 { return amount * 100 }

// SeedDatabase ensures a default admin and the initial room catalog exist.
func SeedDatabase(db *gorm.DB) {
	// ---------------- Default admin ----------------
	var adminCount int64
	db.Model(&models.AdminUser{}).Count(&adminCount)
	if adminCount == 0 {
		password := envOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Email:    envOrDefault("ADMIN_EMAIL", "admin@stayshotel.ng"),
				Password: string(hash),
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				if err := db.Create(&models.Profile{UserID: admin.ID}).Error; err != nil {
					log.Printf("warning: failed to create default admin profile: %v", err)
				}
				marker := models.AdminUser{
					UserID:      admin.ID,
					Role:        "admin",
					Permissions: jsonList("rooms.manage", "bookings.moderate", "contact.moderate"),
				}
				if err := db.Create(&marker).Error; err != nil {
					log.Printf("warning: failed to grant admin capability: %v", err)
				} else {
					log.Println("Default admin seeded")
				}
			}
		}
	}

	// ---------------- Room catalog ----------------
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount > 0 {
		log.Println("Rooms already seeded")
		return
	}

	deluxeOriginal := naira(51000)
	rooms := []models.Room{
		{
			Name: "Standard Room", RoomType: models.RoomTypeStandard,
			PricePerNight: naira(35000), Capacity: 2, Beds: "1 Queen Bed",
			Bathrooms: 1, SizeSqm: 24, IsAvailable: true,
			Amenities: jsonList("Free WiFi", "Air Conditioning", "Flat-screen TV"),
		},
		{
			Name: "Deluxe Room", RoomType: models.RoomTypeDeluxe,
			PricePerNight: naira(45000), OriginalPrice: &deluxeOriginal,
			Capacity: 2, Beds: "1 King Bed", Bathrooms: 1, SizeSqm: 32, IsAvailable: true,
			Amenities: jsonList("Free WiFi", "Air Conditioning", "Mini Bar", "City View"),
		},
		{
			Name: "Executive Suite", RoomType: models.RoomTypeSuite,
			PricePerNight: naira(75000), Capacity: 3, Beds: "1 King Bed + Sofa Bed",
			Bathrooms: 2, SizeSqm: 48, IsAvailable: true,
			Amenities: jsonList("Free WiFi", "Air Conditioning", "Mini Bar", "Living Area", "Ocean View"),
		},
		{
			Name: "Family Room", RoomType: models.RoomTypeFamily,
			PricePerNight: naira(65000), Capacity: 5, Beds: "2 Queen Beds",
			Bathrooms: 2, SizeSqm: 42, IsAvailable: true,
			Amenities: jsonList("Free WiFi", "Air Conditioning", "Connecting Rooms", "Kids Amenities"),
		},
		{
			Name: "Business Room", RoomType: models.RoomTypeBusiness,
			PricePerNight: naira(55000), Capacity: 2, Beds: "1 King Bed",
			Bathrooms: 1, SizeSqm: 34, IsAvailable: true,
			Amenities: jsonList("Free WiFi", "Air Conditioning", "Work Desk", "Express Check-in"),
		},
		{
			Name: "Presidential Suite", RoomType: models.RoomTypePresidential,
			PricePerNight: naira(120000), Capacity: 4, Beds: "2 King Beds",
			Bathrooms: 3, SizeSqm: 96, IsAvailable: true,
			Amenities: jsonList("Free WiFi", "Air Conditioning", "Private Lounge", "Butler Service", "Jacuzzi"),
		},
	}

	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Room catalog seeded")
}
