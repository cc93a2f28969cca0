package kvstore

import (
	"log/slog"

	"mercado/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	providerFile  = "file"
	providerRedis = "redis"
)

// Params holds dependencies for the Store, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates a Store based on configuration.
func New(params Params) (Store, error) {
	cfg := params.Config.KVStore
	logger := params.Logger

	if cfg == nil {
		logger.Info("Key-value store not configured, keeping state in memory only")

		return NewMemoryStore(), nil
	}

	switch cfg.Provider {
	case providerFile, "":
		logger.Info("Using file-backed key-value store", slog.String("path", cfg.Path))

		return NewFileStore(cfg.Path, logger), nil

	case providerRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using redis-backed key-value store", slog.String("addr", cfg.Redis.Addr))

		return NewRedisStore(cfg.Redis, params.Config.Env.ServiceName, logger), nil

	default:
		return nil, errors.Errorf("unknown kvstore provider: %s", cfg.Provider)
	}
}
