package db

import (
	"context"
	"strings"
	"time"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/config"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedis returns a connected client, or nil when redis is disabled or
// unreachable. Callers fall back to in-process state on nil.
func NewRedis(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.L.Warn("redis unavailable, using in-memory state", zap.String("addr", cfg.Addr), zap.Error(err))
		return nil
	}

	logger.L.Info("redis connected", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return client
}

// RedisKey joins parts under the configured prefix.
func RedisKey(prefix string, parts ...string) string {
	if prefix == "" {
		prefix = "photoshare"
	}
	return strings.Join(append([]string{prefix}, parts...), ":")
}
