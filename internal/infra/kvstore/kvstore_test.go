package kvstore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"mercado/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type branding struct {
	LogoURL      string `json:"logo_url"`
	PrimaryColor string `json:"primary_color"`
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, newTestLogger())
	ctx := context.Background()

	want := branding{LogoURL: "/assets/logo.svg", PrimaryColor: "#0057b8"}
	store.Set(ctx, KeyStoreConfig, want)

	var got branding
	require.True(t, store.Get(ctx, KeyStoreConfig, &got))
	assert.Equal(t, want, got)
}

func TestFileStore_DefaultOnMiss(t *testing.T) {
	store := NewFileStore(t.TempDir(), newTestLogger())

	def := branding{PrimaryColor: "#0057b8"}
	got := GetOr(context.Background(), store, KeyStoreConfig, def)
	assert.Equal(t, def, got)
}

func TestFileStore_DefaultOnCorruptBlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyCart+".json"), []byte("{not json"), 0o644))

	store := NewFileStore(dir, newTestLogger())
	got := GetOr(context.Background(), store, KeyCart, []int{1, 2})
	assert.Equal(t, []int{1, 2}, got)
}

func TestFileStore_DefaultOnBadFieldEncoding(t *testing.T) {
	// A cart blob whose tags decayed to a number must hydrate as the
	// default, not fail or crash while the miss is logged.
	dir := t.TempDir()
	blob := `[{"product":{"id":"3b241101-e2bb-4255-8caf-4136c566a962","name":"Coca","price":4.5,"tags":123},"quantity":1}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyCart+".json"), []byte(blob), 0o644))

	store := NewFileStore(dir, newTestLogger())
	got := GetOr(context.Background(), store, KeyCart, []entity.CartItem(nil))
	assert.Empty(t, got)
}

func TestFileStore_SetSwallowsStorageFailure(t *testing.T) {
	// Pointing the store at a path occupied by a file makes MkdirAll fail;
	// Set must not panic and Get must fall back to the default.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	store := NewFileStore(blocked, newTestLogger())
	ctx := context.Background()

	store.Set(ctx, KeyCart, []string{"a"})
	assert.Equal(t, 0, GetOr(ctx, store, KeyCart, 0))
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, KeyIsAuthenticated, true)
	assert.True(t, GetOr(ctx, store, KeyIsAuthenticated, false))
	assert.False(t, GetOr(ctx, store, "missing", false))
}

func TestGetOr_DoesNotMutateDefaultOnPartialDecode(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, KeyStoreConfig, map[string]string{"logo_url": "custom"})

	got := GetOr(ctx, store, KeyStoreConfig, branding{LogoURL: "def", PrimaryColor: "#fff"})
	assert.Equal(t, "custom", got.LogoURL)
}
