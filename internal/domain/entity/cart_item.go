package entity

// CartItem is a product selected for purchase plus a positive quantity.
// The cart holds at most one CartItem per product ID; a quantity reaching
// zero removes the item instead.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
