package service

// QRCodeService defines the interface for QR code rendering.
type QRCodeService interface {
	// GeneratePNG renders the payload as a QR code PNG image.
	GeneratePNG(payload string) ([]byte, error)
}
