package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mercado/config"
	custommw "mercado/internal/delivery/http/middleware"
	"mercado/internal/delivery/http/router"
	"mercado/internal/delivery/http/router/handler"
	"mercado/internal/delivery/http/validator"
	"mercado/internal/domain/entity"
	"mercado/internal/domain/repository"
	"mercado/internal/domain/service"
	"mercado/internal/infra/auth"
	"mercado/internal/infra/kvstore"
	"mercado/internal/usecase"
	"mercado/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductRepository struct {
	products []*entity.Product
}

func (r *stubProductRepository) ListByName(context.Context) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *stubProductRepository) Create(_ context.Context, product *entity.Product) error {
	product.ID = uuid.New()
	r.products = append(r.products, product)

	return nil
}

func (r *stubProductRepository) Update(context.Context, *entity.Product) error {
	return nil
}

func (r *stubProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	for _, p := range r.products {
		if p.ID == id {
			return nil
		}
	}

	return repository.ErrProductNotFound
}

type stubQRCode struct{}

func (stubQRCode) GenerateOrderQR(string) ([]byte, error) {
	return []byte("png"), nil
}

type stubPublisher struct{}

func (stubPublisher) PublishOrderSubmitted(context.Context, *service.OrderEvent) error {
	return nil
}

func (stubPublisher) Close() error { return nil }

type testEnv struct {
	echo    *echo.Echo
	catalog usecase.CatalogUsecase
	cart    usecase.CartUsecase
	session usecase.SessionUsecase
	repo    *stubProductRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Admin: &config.AdminConfig{Username: "admin", Password: "admin"},
		Storefront: &config.StorefrontConfig{
			Name:                "Jaci Supermercados",
			WhatsAppNumber:      "551138998270304",
			DefaultLogoURL:      "/assets/logo.svg",
			DefaultPrimaryColor: "#0057b8",
		},
	}
	cfg.SecretKey.Access = "test-secret"

	store := kvstore.NewMemoryStore()
	repo := &stubProductRepository{products: []*entity.Product{
		{ID: uuid.New(), Name: "Arroz Tipo 1 5kg", Price: 20, Category: "Mercearia"},
		{ID: uuid.New(), Name: "Coca-Cola 350ml", Price: 4.5, Category: "Bebidas", Tags: entity.TagList{"lata"}},
	}}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	catalog := impl.NewCatalogService(repo, logger)
	require.NoError(t, catalog.Load(context.Background()))

	cart := impl.NewCartService(store, logger)
	session := impl.NewSessionService(cfg, auth.NewBcryptHasher(cfg), tokens, store, logger)
	storeConfig := impl.NewStoreConfigService(cfg, store, logger)
	order := impl.NewOrderService(cfg, cart, session, stubQRCode{}, stubPublisher{}, logger)

	e := echo.New()
	e.Validator = validator.New()
	errorMW := custommw.NewErrorMiddleware(logger)
	e.HTTPErrorHandler = errorMW.HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(session),
		CatalogHandler:      handler.NewCatalogHandler(catalog),
		CartHandler:         handler.NewCartHandler(cart, catalog, session),
		ViewHandler:         handler.NewViewHandler(session),
		CheckoutHandler:     handler.NewCheckoutHandler(order),
		StoreConfigHandler:  handler.NewStoreConfigHandler(storeConfig),
		AdminProductHandler: handler.NewAdminProductHandler(catalog),
		AuthMiddleware:      custommw.NewAuthMiddleware(tokens, session),
	})
	r.RegisterRoutes(e)

	return &testEnv{echo: e, catalog: catalog, cart: cart, session: session, repo: repo}
}

func (env *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	return rec
}

func (env *testEnv) doAuthed(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func TestStorefront_ListAndFilterProducts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Len(t, data["products"], 2)

	rec = env.do(http.MethodGet, "/api/products?category=Bebidas", "")
	data = decodeData(t, rec)
	assert.Len(t, data["products"], 1)

	rec = env.do(http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mercearia")
}

func TestCartFlow_AddUpdateCheckout(t *testing.T) {
	env := newTestEnv(t)
	arroz := env.repo.products[0]

	rec := env.do(http.MethodPost, "/api/cart/items", `{"product_id":"`+arroz.ID.String()+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, "/api/cart/items", `{"product_id":"`+arroz.ID.String()+`"}`)
	data := decodeData(t, rec)
	items := data["items"].([]any)
	require.Len(t, items, 1, "same product must merge into one line")
	assert.InDelta(t, 40, data["total"].(float64), 0.001)

	rec = env.do(http.MethodPost, "/api/checkout",
		`{"name":"Maria Silva","address":"Rua das Flores, 123","payment_method":"PIX"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data = decodeData(t, rec)
	assert.Contains(t, data["whatsapp_url"], "https://wa.me/551138998270304?text=")
	assert.Contains(t, data["message"], "2x Arroz Tipo 1 5kg: R$ 40,00")

	rec = env.do(http.MethodGet, "/api/cart", "")
	data = decodeData(t, rec)
	assert.Empty(t, data["items"], "checkout clears the cart")
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/checkout",
		`{"name":"Maria","address":"Rua A","payment_method":"PIX"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "CART_EMPTY")
}

func TestCart_AddUnknownProductRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/cart/items", `{"product_id":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/admin/products", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodPost, "/auth/login", `{"username":"admin","password":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeData(t, rec)["access_token"].(string)

	rec = env.doAuthed(http.MethodGet, "/admin/products?q=lata", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Len(t, data["products"], 1)

	// Logout invalidates tokens still in flight.
	rec = env.do(http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.doAuthed(http.MethodGet, "/admin/products", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdmin_CreateProductAndViewState(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/auth/login", `{"username":"admin","password":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeData(t, rec)["access_token"].(string)

	rec = env.doAuthed(http.MethodPost, "/admin/products",
		`{"name":"Feijão Carioca 1kg","price":8.9,"category":"Mercearia","tags":["grão"]}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, env.catalog.Products(), 3)

	rec = env.do(http.MethodPut, "/api/view", `{"view":"checkout"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPut, "/api/view", `{"view":"dashboard"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_VIEW")

	rec = env.do(http.MethodGet, "/api/view", "")
	data := decodeData(t, rec)
	assert.Equal(t, "checkout", data["view"])
}

func TestStoreConfig_GetAndAdminUpdate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/store-config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "#0057b8", data["primary_color"])

	rec = env.do(http.MethodPost, "/auth/login", `{"username":"admin","password":"admin"}`)
	token := decodeData(t, rec)["access_token"].(string)

	rec = env.doAuthed(http.MethodPut, "/admin/store-config", `{"primary_color":"#ff0000"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/store-config", "")
	data = decodeData(t, rec)
	assert.Equal(t, "#ff0000", data["primary_color"])
	assert.Equal(t, "/assets/logo.svg", data["logo_url"])
}
