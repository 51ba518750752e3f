package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateInvoiceQR encodes an invoice reference as a PNG image
	GenerateInvoiceQR(reference string) ([]byte, error)
}
