package service

import (
	"context"
	"time"
)

// OrderEvent is the payload published when a checkout hands an order off.
// It carries the composed message so downstream consumers (dashboards, order
// logs) see exactly what the customer sent.
type OrderEvent struct {
	OrderID       string    `json:"order_id"`
	StoreName     string    `json:"store_name"`
	Message       string    `json:"message"`
	WhatsAppURL   string    `json:"whatsapp_url"`
	Total         float64   `json:"total"`
	ItemCount     int       `json:"item_count"`
	PaymentMethod string    `json:"payment_method"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// EventPublisher defines the interface for publishing order events to a
// message queue. Publishing is best-effort; checkout never waits on it.
type EventPublisher interface {
	// PublishOrderSubmitted publishes an order-submitted event.
	PublishOrderSubmitted(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
