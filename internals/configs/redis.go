package configs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// ConnectRedis: REDIS_ADDR kosong / ping gagal → nil (cache libur dimatikan).
func ConnectRedis(cfg *AppConfig) redis.UniversalClient {
	if cfg.RedisAddr == "" {
		log.Warn("REDIS_ADDR tidak diset, cache kalender libur dimatikan.")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.WithError(err).Error("Gagal konek ke Redis, cache dimatikan")
		_ = rdb.Close()
		return nil
	}

	log.Info("✅ Redis connected.")
	return rdb
}
