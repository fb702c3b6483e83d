package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"cabin-backoffice/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func EnvOrDefault(key, def string) string {
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

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := EnvOrDefault("DB_USER", "root")
	pass := EnvOrDefault("DB_PASS", "")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "cabin_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures the singleton settings row and a default admin exist.
// Both are idempotent; nothing is touched on later startups.
func SeedDatabase() {
	var settingsCount int64
	DB.Model(&models.Setting{}).Count(&settingsCount)
	if settingsCount == 0 {
		setting := models.Setting{
			ID:                      models.SettingsID,
			MinReservationLength:    3,
			MaxReservationLength:    90,
			MaxGuestsPerReservation: 10,
			BreakfastPrice:          15,
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed settings: %v", err)
		} else {
			log.Println("Settings seeded")
		}
	}

	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(EnvOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
			return
		}
		admin := models.User{
			Name:     "Admin User",
			Email:    EnvOrDefault("ADMIN_EMAIL", "admin@cabins.local"),
			Password: string(hash),
			Role:     models.RoleAdmin,
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.Printf("warning: failed to create default admin: %v", err)
		} else {
			log.Println("Default admin seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
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

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// Parents before children.
	if err := DB.AutoMigrate(
		&models.Setting{},
		&models.User{},
		&models.Cabin{},
		&models.Reservation{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
