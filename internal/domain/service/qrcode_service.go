package service

// QRCodeService generates QR codes for checkout hand-off links so an order
// can be carried to another device.
type QRCodeService interface {
	// GenerateOrderQR renders the deep link as a PNG QR code.
	GenerateOrderQR(link string) ([]byte, error)
}
