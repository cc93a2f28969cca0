package kvstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"mercado/config"

	"github.com/redis/go-redis/v9"
)

// redisStore persists keys as JSON strings in Redis, for deployments where
// the storefront state should survive the process and be shared across
// replicas.
type redisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStore creates a Redis-backed store from the given connection
// settings. Keys are namespaced by the service name.
func NewRedisStore(cfg *config.RedisConfig, serviceName string, logger *slog.Logger) Store {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	prefix := serviceName
	if prefix == "" {
		prefix = "mercado"
	}

	return &redisStore{
		client: client,
		prefix: prefix + ":",
		logger: logger,
	}
}

func (s *redisStore) Get(ctx context.Context, key string, dest any) bool {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.WarnContext(ctx, "Failed to read key-value blob from redis",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}

		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.WarnContext(ctx, "Discarding undecodable key-value blob",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)

		return false
	}

	return true
}

func (s *redisStore) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to encode key-value blob",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)

		return
	}

	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist key-value blob to redis",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
