package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storefront": map[string]any{
			"whatsappNumber": "",
		},
		"kvstore": map[string]any{
			"provider": "file",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STOREFRONT_WHATSAPPNUMBER", want: "storefront.whatsappNumber"},
		{envKey: "KVSTORE_PROVIDER", want: "kvstore.provider"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Admin.Username != "admin" || cfg.Admin.Password != "admin" {
		t.Fatalf("expected built-in admin pair, got %q/%q", cfg.Admin.Username, cfg.Admin.Password)
	}
	if cfg.Storefront.DefaultPrimaryColor != "#0057b8" {
		t.Fatalf("unexpected default primary color %q", cfg.Storefront.DefaultPrimaryColor)
	}
	if cfg.KVStore.Provider != "file" {
		t.Fatalf("unexpected kvstore provider %q", cfg.KVStore.Provider)
	}
}

func TestApplyDefaults_KeepsConfiguredHash(t *testing.T) {
	cfg := &Config{Admin: &AdminConfig{Username: "root", PasswordHash: "$2a$10$x"}}
	applyDefaults(cfg)

	if cfg.Admin.Password != "" {
		t.Fatalf("plaintext default must not be applied when a hash is configured")
	}
	if cfg.Admin.Username != "root" {
		t.Fatalf("configured username overwritten: %q", cfg.Admin.Username)
	}
}
