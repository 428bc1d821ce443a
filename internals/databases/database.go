package database

import (
	"fmt"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
)

var DB *gorm.DB

// BuildDSN: URL lengkap + statement_timeout per koneksi.
func BuildDSN(cfg *configs.AppConfig) string {
	timeoutMS := cfg.DBStatementTimeout.Milliseconds()
	if timeoutMS <= 0 {
		timeoutMS = 3000
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.DBUser, cfg.DBPassword),
		Host:   cfg.DBHost + ":" + cfg.DBPort,
		Path:   "/" + cfg.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", cfg.DBSSLMode)
	q.Set("application_name", "schoolku")
	q.Set("options", fmt.Sprintf("-c statement_timeout=%d", timeoutMS))
	u.RawQuery = q.Encode()
	return u.String()
}

func ConnectDB(cfg *configs.AppConfig) (*gorm.DB, error) {
	log.Info("🔌 Koneksi ke PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  BuildDSN(cfg),
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	DB = db
	log.Info("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warnf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
