package configs

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// AppConfig: semua setting runtime, dibaca dari ENV (+ .env lokal).
type AppConfig struct {
	Port string

	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSSLMode          string
	DBStatementTimeout time.Duration

	JWTSecret string

	RedisAddr       string
	RedisPassword   string
	HolidayCacheTTL time.Duration

	SchoolTimezone  string
	LessonBatchSize int
	MaxCandidates   int
	LessonSweepCron string

	LogLevel       string
	RequestTimeout time.Duration
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() *AppConfig {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Info("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Info("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Info("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("DB_STATEMENT_TIMEOUT_MS", 3000)
	v.SetDefault("HOLIDAY_CACHE_TTL", "10m")
	v.SetDefault("SCHOOL_TIMEZONE", "Asia/Jakarta")
	v.SetDefault("LESSON_BATCH_SIZE", 500)
	v.SetDefault("LESSON_MAX_CANDIDATES", 5000)
	v.SetDefault("LESSON_SWEEP_CRON", "@every 15m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REQUEST_TIMEOUT", "15s")

	cfg := &AppConfig{
		Port:               v.GetString("PORT"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBName:             v.GetString("DB_NAME"),
		DBSSLMode:          v.GetString("DB_SSLMODE"),
		DBStatementTimeout: time.Duration(v.GetInt("DB_STATEMENT_TIMEOUT_MS")) * time.Millisecond,
		JWTSecret:          v.GetString("JWT_SECRET"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		HolidayCacheTTL:    v.GetDuration("HOLIDAY_CACHE_TTL"),
		SchoolTimezone:     v.GetString("SCHOOL_TIMEZONE"),
		LessonBatchSize:    v.GetInt("LESSON_BATCH_SIZE"),
		MaxCandidates:      v.GetInt("LESSON_MAX_CANDIDATES"),
		LessonSweepCron:    v.GetString("LESSON_SWEEP_CRON"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		RequestTimeout:     v.GetDuration("REQUEST_TIMEOUT"),
	}

	if cfg.JWTSecret == "" {
		log.Warn("❌ JWT_SECRET belum diset!")
	} else {
		log.Info("✅ JWT_SECRET berhasil dimuat.")
	}
	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
