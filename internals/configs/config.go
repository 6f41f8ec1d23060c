package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	JWTSecret string

	// Supabase Storage (bucket dokumen pendaftaran)
	StorageURL        string
	StorageServiceKey string
	StorageBucket     string

	// WhatsApp Business API (server-only)
	WhatsAppAPIKey        string
	WhatsAppPhoneNumberID string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")

	StorageURL = GetEnv("SUPABASE_URL")
	StorageServiceKey = GetEnv("SUPABASE_SERVICE_ROLE_KEY")
	StorageBucket = GetEnv("STORAGE_BUCKET", "documents")

	WhatsAppAPIKey = GetEnv("WHATSAPP_API_KEY")
	WhatsAppPhoneNumberID = GetEnv("WHATSAPP_PHONE_NUMBER_ID")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if StorageURL == "" {
		log.Println("❌ SUPABASE_URL belum diset, upload dokumen akan gagal!")
	}
	if WhatsAppAPIKey == "" {
		log.Println("⚠️ WHATSAPP_API_KEY belum diset, kirim pesan via API nonaktif")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// DATABASE CONNECTOR (untuk tool offline: seeder/createadmin)
// =======================
func InitSeederDB() *gorm.DB {
	dbUser := GetEnv("DB_USER")
	dbPassword := GetEnv("DB_PASSWORD")
	dbHost := GetEnv("DB_HOST")
	dbPort := GetEnv("DB_PORT")
	dbName := GetEnv("DB_NAME")
	sslmode := GetEnv("DB_SSLMODE", "require")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPassword, dbHost, dbPort, dbName, sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB (seeder): %v", err)
	}
	return db
}
