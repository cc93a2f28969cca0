package impl

import (
	"context"
	"log/slog"
	"sync"

	"mercado/config"
	"mercado/internal/domain/entity"
	"mercado/internal/infra/kvstore"
	"mercado/internal/usecase"
)

// storeConfigService holds the admin-editable branding. Loaded once at
// construction; an absent or undecodable record falls back to the configured
// defaults. Persistence is local-only, so two deployments do not share
// branding edits.
type storeConfigService struct {
	mu     sync.RWMutex
	config entity.StoreConfig

	store  kvstore.Store
	logger *slog.Logger
}

// NewStoreConfigService creates the branding store, hydrated from the
// adapter.
func NewStoreConfigService(cfg *config.Config, store kvstore.Store, logger *slog.Logger) usecase.StoreConfigUsecase {
	defaults := entity.StoreConfig{
		LogoURL:      cfg.Storefront.DefaultLogoURL,
		PrimaryColor: cfg.Storefront.DefaultPrimaryColor,
	}

	return &storeConfigService{
		config: kvstore.GetOr(context.Background(), store, kvstore.KeyStoreConfig, defaults),
		store:  store,
		logger: logger,
	}
}

// Config returns the current branding.
func (s *storeConfigService) Config() entity.StoreConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.config
}

// Update merges the non-nil fields, persists the merged record and returns
// it. Values are accepted as-is; there is no color or URL validation.
func (s *storeConfigService) Update(ctx context.Context, input *usecase.UpdateStoreConfigInput) entity.StoreConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.LogoURL != nil {
		s.config.LogoURL = *input.LogoURL
	}
	if input.PrimaryColor != nil {
		s.config.PrimaryColor = *input.PrimaryColor
	}

	s.store.Set(ctx, kvstore.KeyStoreConfig, s.config)
	s.logger.Info("Store branding updated",
		slog.String("logoUrl", s.config.LogoURL),
		slog.String("primaryColor", s.config.PrimaryColor),
	)

	return s.config
}
