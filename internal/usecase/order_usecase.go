package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutInput carries the delivery details collected at checkout.
type CheckoutInput struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// CheckoutOutput is the composed order hand-off.
type CheckoutOutput struct {
	OrderID     uuid.UUID `json:"order_id"`
	Message     string    `json:"message"`
	WhatsAppURL string    `json:"whatsapp_url"`
	QRCode      []byte    `json:"qr_code,omitempty"`
	Total       float64   `json:"total"`
}

// OrderUsecase composes the WhatsApp order from the cart and hands it off.
type OrderUsecase interface {
	// Checkout snapshots the cart, composes the order message and deep
	// link, publishes the order event and clears the cart.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)
}
