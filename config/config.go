package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"littlelemon-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "little_lemon_super_secret_2024"))

// Settings holds everything main needs from the environment.
type Settings struct {
	Port           string
	DBDSN          string // postgres DSN; sqlite file is used when empty
	SQLitePath     string
	AnonThrottle   int // requests per window for anonymous callers
	UserThrottle   int // requests per window for authenticated callers
	ThrottleWindow time.Duration
}

// Load reads settings from the environment, honouring a .env file if present.
func Load() Settings {
	_ = godotenv.Load()

	return Settings{
		Port:           getEnv("PORT", "8080"),
		DBDSN:          os.Getenv("DB_DSN"),
		SQLitePath:     getEnv("SQLITE_PATH", "littlelemon.db"),
		AnonThrottle:   getEnvInt("THROTTLE_ANON", 20),
		UserThrottle:   getEnvInt("THROTTLE_USER", 100),
		ThrottleWindow: time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// InitDB connects to the configured database, runs migrations and seeds the
// role groups. Postgres is used when DB_DSN is set, sqlite otherwise.
func InitDB(s Settings) {
	var dialector gorm.Dialector
	if s.DBDSN != "" {
		dialector = postgres.Open(s.DBDSN)
	} else {
		dialector = sqlite.Open(s.SQLitePath)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := MigrateAndSeed(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	seedSuperuser(DB)

	log.Println("Database connected and migrated")
}

// MigrateAndSeed runs schema migrations and makes sure the two role groups
// exist. Tests call it directly against their own database handle.
func MigrateAndSeed(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.MenuItem{},
		&models.Cart{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	for _, name := range []string{models.GroupManager, models.GroupDeliveryCrew} {
		group := models.Group{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&group).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedSuperuser creates an initial superuser account when ADMIN_USERNAME and
// ADMIN_PASSWORD are both set and the account does not exist yet.
func seedSuperuser(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		log.Printf("failed to check superuser: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash superuser password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsSuperuser:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to create superuser: %v", err)
		return
	}
	log.Printf("created superuser: %s", username)
}
