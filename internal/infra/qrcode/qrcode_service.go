package qrcode

import (
	"strconv"
	"strings"

	"userhub/config"
	"userhub/internal/domain/service"
	"userhub/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	profilePathSeg = "/profile/"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// New builds the service from the qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService("", defaultSize, "")
	}

	return NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L", "LOW":
		level = qrcode.Low
	case "Q", "HIGH":
		level = qrcode.High
	case "H", "HIGHEST":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProfileQR encodes <baseURL>/profile/<id> as a PNG
func (s *qrcodeService) GenerateProfileQR(userID int64) ([]byte, error) {
	pngBytes, err := qrcode.Encode(s.profileURL(userID), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}

// ParseProfileQR extracts the user ID from a scanned profile URL
func (s *qrcodeService) ParseProfileQR(qrData string) (int64, error) {
	prefix := s.baseURL + profilePathSeg
	if !strings.HasPrefix(qrData, prefix) {
		return 0, errors.Errorf("not a profile QR code: %q", qrData)
	}

	userID, err := strconv.ParseInt(strings.TrimPrefix(qrData, prefix), 10, 64)
	if err != nil || userID <= 0 {
		return 0, errors.Errorf("invalid user id in QR code: %q", qrData)
	}

	return userID, nil
}

func (s *qrcodeService) profileURL(userID int64) string {
	return s.baseURL + profilePathSeg + strconv.FormatInt(userID, 10)
}
