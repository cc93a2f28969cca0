package impl

import (
	"context"
	"io"
	"log/slog"

	"mercado/internal/domain/entity"
	"mercado/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) ListByName(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAdminToken(subject string) (string, error) {
	args := m.Called(subject)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if token, ok := args.Get(0).(*jwt.Token); ok {
		return token, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockQRCodeService struct {
	mock.Mock
}

func (m *mockQRCodeService) GenerateOrderQR(link string) ([]byte, error) {
	args := m.Called(link)
	if png, ok := args.Get(0).([]byte); ok {
		return png, args.Error(1)
	}

	return nil, args.Error(1)
}

// fakeHasher matches any password previously "hashed" by prefixing. It keeps
// the session tests independent of bcrypt timing.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return "hashed:"+password == hash
}

// capturingPublisher records published order events on a channel so tests can
// wait for the fire-and-forget goroutine.
type capturingPublisher struct {
	published chan *service.OrderEvent
}

func newCapturingPublisher() *capturingPublisher {
	return &capturingPublisher{published: make(chan *service.OrderEvent, 1)}
}

func (p *capturingPublisher) PublishOrderSubmitted(_ context.Context, event *service.OrderEvent) error {
	p.published <- event

	return nil
}

func (p *capturingPublisher) Close() error {
	return nil
}
