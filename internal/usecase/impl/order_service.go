package impl

import (
	"context"
	"log/slog"
	"time"

	"mercado/config"
	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/domain/order"
	"mercado/internal/domain/service"
	"mercado/internal/usecase"

	"github.com/google/uuid"
)

const publishTimeout = 10 * time.Second

// orderService turns the cart into a WhatsApp order hand-off. Submission is
// optimistic: once the message is composed the cart is cleared and the view
// reset regardless of whether the customer completes the send.
type orderService struct {
	storeName   string
	whatsNumber string

	cart      usecase.CartUsecase
	session   usecase.SessionUsecase
	qr        service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewOrderService creates the checkout usecase.
func NewOrderService(
	cfg *config.Config,
	cart usecase.CartUsecase,
	session usecase.SessionUsecase,
	qr service.QRCodeService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		storeName:   cfg.Storefront.Name,
		whatsNumber: cfg.Storefront.WhatsAppNumber,
		cart:        cart,
		session:     session,
		qr:          qr,
		publisher:   publisher,
		logger:      logger,
	}
}

// Checkout snapshots the cart, composes the order message and deep link,
// publishes the order event fire-and-forget, then clears the cart and
// returns to the products view.
func (s *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	method := entity.PaymentMethod(input.PaymentMethod)
	if !method.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	data := entity.CheckoutData{
		Name:          input.Name,
		Address:       input.Address,
		PaymentMethod: method,
	}

	message := order.ComposeMessage(items, data, s.storeName)
	link := order.DeepLink(s.whatsNumber, message)
	total := order.Total(items)
	orderID := uuid.New()

	qrCode, err := s.qr.GenerateOrderQR(link)
	if err != nil {
		// The link itself is still usable, so the QR code is best-effort.
		s.logger.Warn("Failed to render order QR code", slog.Any("error", err))
		qrCode = nil
	}

	s.publishEvent(orderID, message, link, total, len(items), method)

	s.cart.Clear(ctx)
	if err := s.session.SetView(entity.ViewProducts); err != nil {
		s.logger.Warn("Failed to reset view after checkout", slog.Any("error", err))
	}

	s.logger.Info("Order handed off",
		slog.String("orderId", orderID.String()),
		slog.Int("items", len(items)),
		slog.Float64("total", total),
	)

	return &usecase.CheckoutOutput{
		OrderID:     orderID,
		Message:     message,
		WhatsAppURL: link,
		QRCode:      qrCode,
		Total:       total,
	}, nil
}

// publishEvent hands the order event to the publisher on a detached context;
// checkout never waits on, or fails because of, the event bus.
func (s *orderService) publishEvent(orderID uuid.UUID, message, link string, total float64, itemCount int, method entity.PaymentMethod) {
	event := &service.OrderEvent{
		OrderID:       orderID.String(),
		StoreName:     s.storeName,
		Message:       message,
		WhatsAppURL:   link,
		Total:         total,
		ItemCount:     itemCount,
		PaymentMethod: string(method),
		SubmittedAt:   time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := s.publisher.PublishOrderSubmitted(ctx, event); err != nil {
			s.logger.Warn("Failed to publish order event",
				slog.String("orderId", event.OrderID),
				slog.Any("error", err),
			)
		}
	}()
}
