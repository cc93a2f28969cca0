package usecase

import (
	"context"

	"mercado/internal/domain/entity"
)

// UpdateStoreConfigInput is a partial branding update; nil fields keep their
// current value.
type UpdateStoreConfigInput struct {
	LogoURL      *string `json:"logo_url"`
	PrimaryColor *string `json:"primary_color"`
}

// StoreConfigUsecase is the store branding store.
type StoreConfigUsecase interface {
	// Config returns the current branding.
	Config() entity.StoreConfig

	// Update merges the partial input, persists the result and returns it.
	Update(ctx context.Context, input *UpdateStoreConfigInput) entity.StoreConfig
}
