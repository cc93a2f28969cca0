package entity

// View is the closed set of top-level storefront views. The cart is an
// overlay flag, not a view.
type View string

const (
	ViewProducts View = "products"
	ViewCheckout View = "checkout"
	ViewLogin    View = "login"
)

// IsValid reports whether the view belongs to the closed enumeration.
func (v View) IsValid() bool {
	switch v {
	case ViewProducts, ViewCheckout, ViewLogin:
		return true
	}

	return false
}
