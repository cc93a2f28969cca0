// Package order composes the outbound order message and its WhatsApp deep
// link. Everything here is pure; the side effects of submitting an order
// (clearing the cart, publishing the event) live in the order usecase.
package order

import (
	"fmt"
	"net/url"
	"strings"

	"mercado/internal/domain/entity"
)

// Total sums price times quantity over the cart lines.
func Total(items []entity.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	return total
}

// FormatPrice renders a price in the customer-facing pt-BR style, e.g.
// "R$ 40,00".
func FormatPrice(value float64) string {
	return "R$ " + strings.ReplaceAll(fmt.Sprintf("%.2f", value), ".", ",")
}

// ComposeMessage builds the human-readable itemized order message sent over
// WhatsApp: one line per item, the order total, then the delivery data.
func ComposeMessage(items []entity.CartItem, data entity.CheckoutData, storeName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Novo Pedido - %s*\n\n", storeName)
	b.WriteString("*Itens:*\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %dx %s: %s\n", item.Quantity, item.Product.Name, FormatPrice(item.Subtotal()))
	}

	fmt.Fprintf(&b, "\n*Total do Pedido: %s*\n\n", FormatPrice(Total(items)))
	b.WriteString("*Dados para Entrega:*\n")
	fmt.Fprintf(&b, "Nome: %s\n", data.Name)
	fmt.Fprintf(&b, "Endereço: %s\n", data.Address)
	fmt.Fprintf(&b, "Forma de Pagamento: %s\n\n", data.PaymentMethod)
	b.WriteString("Aguardando confirmação do pedido.")

	return b.String()
}

// DeepLink forms the wa.me deep link carrying the URL-encoded message.
// Spaces are encoded as %20 to match encodeURIComponent semantics rather
// than the form-encoding plus sign.
func DeepLink(phoneNumber, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return "https://wa.me/" + phoneNumber + "?text=" + encoded
}
