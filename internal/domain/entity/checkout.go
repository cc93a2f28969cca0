package entity

// PaymentMethod is the closed set of payment options offered at checkout.
// The values are the customer-facing labels carried verbatim into the order
// message.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Dinheiro"
	PaymentCard PaymentMethod = "Cartão"
	PaymentPix  PaymentMethod = "PIX"
)

// IsValid reports whether the method belongs to the closed enumeration.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentPix:
		return true
	}

	return false
}

// CheckoutData is the ephemeral delivery form captured for a single checkout.
type CheckoutData struct {
	Name          string        `json:"name"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}
