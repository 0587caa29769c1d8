package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProfileQR returns a PNG QR code pointing at the user's profile
	GenerateProfileQR(userID int64) ([]byte, error)

	// ParseProfileQR extracts the user ID from QR code data
	ParseProfileQR(qrData string) (int64, error)
}
