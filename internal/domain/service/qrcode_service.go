package service

// QRCodeService defines the interface for magic-link QR code generation.
type QRCodeService interface {
	// GenerateMagicLinkQR renders the trial-booking URL for the given magic
	// token as a PNG QR code.
	GenerateMagicLinkQR(magicToken string) ([]byte, error)
}
