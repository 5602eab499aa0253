package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	AppEnv           string
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
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	AppEnv = GetEnv("APP_ENV", "development")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	if v, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func IsProduction() bool {
	return AppEnv == "production"
}

// =======================
// SKALA PREDIKAT RAPOR
// =======================
// Ambang predikat huruf dapat dioverride lewat ENV.
// Default diasumsikan: A ≥ 90, B ≥ 75, C ≥ 60, sisanya D.
type GradeScale struct {
	MinA int
	MinB int
	MinC int
}

func LoadGradeScale() GradeScale {
	return GradeScale{
		MinA: GetEnvInt("GRADE_MIN_A", 90),
		MinB: GetEnvInt("GRADE_MIN_B", 75),
		MinC: GetEnvInt("GRADE_MIN_C", 60),
	}
}
