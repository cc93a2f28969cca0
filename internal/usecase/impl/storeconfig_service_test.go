package impl

import (
	"context"
	"testing"

	"mercado/config"
	"mercado/internal/infra/kvstore"
	"mercado/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func storefrontTestConfig() *config.Config {
	return &config.Config{
		Storefront: &config.StorefrontConfig{
			Name:                "Jaci Supermercados",
			WhatsAppNumber:      "551138998270304",
			DefaultLogoURL:      "/assets/logo.svg",
			DefaultPrimaryColor: "#0057b8",
		},
	}
}

func TestStoreConfigService_DefaultsOnMiss(t *testing.T) {
	svc := NewStoreConfigService(storefrontTestConfig(), kvstore.NewMemoryStore(), newTestLogger())

	branding := svc.Config()
	assert.Equal(t, "/assets/logo.svg", branding.LogoURL)
	assert.Equal(t, "#0057b8", branding.PrimaryColor)
}

func TestStoreConfigService_PartialUpdateMerges(t *testing.T) {
	svc := NewStoreConfigService(storefrontTestConfig(), kvstore.NewMemoryStore(), newTestLogger())
	color := "#ff0000"

	branding := svc.Update(context.Background(), &usecase.UpdateStoreConfigInput{PrimaryColor: &color})

	assert.Equal(t, "#ff0000", branding.PrimaryColor)
	assert.Equal(t, "/assets/logo.svg", branding.LogoURL, "untouched field keeps its value")
}

func TestStoreConfigService_UpdateRoundTrips(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()
	logo := "https://cdn.example.com/logo.png"
	color := "#222222"

	first := NewStoreConfigService(storefrontTestConfig(), store, newTestLogger())
	first.Update(ctx, &usecase.UpdateStoreConfigInput{LogoURL: &logo, PrimaryColor: &color})

	second := NewStoreConfigService(storefrontTestConfig(), store, newTestLogger())
	branding := second.Config()
	assert.Equal(t, logo, branding.LogoURL)
	assert.Equal(t, color, branding.PrimaryColor)
}

func TestStoreConfigService_AcceptsArbitraryValues(t *testing.T) {
	svc := NewStoreConfigService(storefrontTestConfig(), kvstore.NewMemoryStore(), newTestLogger())
	bogus := "not-a-color"

	branding := svc.Update(context.Background(), &usecase.UpdateStoreConfigInput{PrimaryColor: &bogus})

	assert.Equal(t, "not-a-color", branding.PrimaryColor, "values pass through unvalidated")
}
