package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"userhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "medium"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("https://hub.example", 256, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	service := NewQRCodeService("https://hub.example/", 200, "M")

	qrBytes, err := service.GenerateProfileQR(42)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestQRCodeService_ParseProfileQR(t *testing.T) {
	service := NewQRCodeService("https://hub.example", 256, "M")

	userID, err := service.ParseProfileQR("https://hub.example/profile/42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	for _, data := range []string{
		"https://other.example/profile/42",
		"https://hub.example/profile/abc",
		"https://hub.example/profile/-1",
		"",
	} {
		_, err := service.ParseProfileQR(data)
		assert.Error(t, err, "data %q", data)
	}
}

func TestNew_DefaultsWithoutConfig(t *testing.T) {
	service := New(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, service.size)
	assert.Equal(t, "/profile/7", service.profileURL(7))
}
