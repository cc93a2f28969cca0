package impl

import (
	"context"
	"testing"
	"time"

	"mercado/config"
	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/infra/kvstore"
	"mercado/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderTestConfig() *config.Config {
	cfg := storefrontTestConfig()
	cfg.Admin = &config.AdminConfig{Username: "admin", Password: "admin"}

	return cfg
}

type orderFixture struct {
	cart      usecase.CartUsecase
	session   usecase.SessionUsecase
	qr        *mockQRCodeService
	publisher *capturingPublisher
	svc       usecase.OrderUsecase
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	cfg := orderTestConfig()
	store := kvstore.NewMemoryStore()

	f := &orderFixture{
		cart:      NewCartService(store, newTestLogger()),
		session:   newTestSession(cfg, store, new(mockTokenService)),
		qr:        new(mockQRCodeService),
		publisher: newCapturingPublisher(),
	}
	f.svc = NewOrderService(cfg, f.cart, f.session, f.qr, f.publisher, newTestLogger())

	return f
}

func validCheckout() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Name:          "Maria Silva",
		Address:       "Rua das Flores, 123 - Centro",
		PaymentMethod: "PIX",
	}
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	out, err := f.svc.Checkout(context.Background(), validCheckout())

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_Checkout_InvalidPaymentMethod(t *testing.T) {
	f := newOrderFixture(t)
	f.cart.Add(context.Background(), sampleProduct("Arroz", 20))

	input := validCheckout()
	input.PaymentMethod = "Boleto"

	_, err := f.svc.Checkout(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
	assert.Len(t, f.cart.Items(), 1, "rejected checkout must not touch the cart")
}

func TestOrderService_Checkout_Success(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	arroz := sampleProduct("Arroz", 20)

	f.cart.Add(ctx, arroz)
	f.cart.Add(ctx, arroz)
	require.NoError(t, f.session.SetView(entity.ViewCheckout))

	f.qr.On("GenerateOrderQR", mock.AnythingOfType("string")).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	out, err := f.svc.Checkout(ctx, validCheckout())

	require.NoError(t, err)
	assert.Contains(t, out.Message, "*Novo Pedido - Jaci Supermercados*")
	assert.Contains(t, out.Message, "- 2x Arroz: R$ 40,00")
	assert.Contains(t, out.Message, "*Total do Pedido: R$ 40,00*")
	assert.Contains(t, out.Message, "Forma de Pagamento: PIX")
	assert.Contains(t, out.WhatsAppURL, "https://wa.me/551138998270304?text=")
	assert.NotContains(t, out.WhatsAppURL, "+", "spaces must encode as %20")
	assert.NotEmpty(t, out.QRCode)
	assert.InDelta(t, 40, out.Total, 0.001)

	assert.Empty(t, f.cart.Items(), "cart clears on hand-off")
	assert.Equal(t, entity.ViewProducts, f.session.View())

	select {
	case event := <-f.publisher.published:
		assert.Equal(t, out.OrderID.String(), event.OrderID)
		assert.Equal(t, "Jaci Supermercados", event.StoreName)
		assert.Equal(t, 1, event.ItemCount)
		assert.Equal(t, "PIX", event.PaymentMethod)
	case <-time.After(2 * time.Second):
		t.Fatal("order event was never published")
	}
}

func TestOrderService_Checkout_QRFailureIsTolerated(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	f.cart.Add(ctx, sampleProduct("Coca-Cola", 4.5))
	f.qr.On("GenerateOrderQR", mock.AnythingOfType("string")).
		Return(nil, errors.New("encoder failed")).Once()

	out, err := f.svc.Checkout(ctx, validCheckout())

	require.NoError(t, err)
	assert.Empty(t, out.QRCode)
	assert.NotEmpty(t, out.WhatsAppURL)
	assert.Empty(t, f.cart.Items())
	<-f.publisher.published
}
