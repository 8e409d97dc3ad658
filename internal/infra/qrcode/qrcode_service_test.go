package qrcode

import (
	"bytes"
	"testing"

	"pssports/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				QRCode: &config.QRCodeConfig{
					Size:                 256,
					ErrorCorrectionLevel: tt.errorCorrectionLevel,
				},
			}
			svc := NewQRCodeService(cfg)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateMagicLinkQR(t *testing.T) {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 256,
			ErrorCorrectionLevel: "M",
			BaseURL:              "https://escola.example.com/agendamento",
		},
	}
	svc := NewQRCodeService(cfg)

	pngBytes, err := svc.GenerateMagicLinkQR("token-magico-123")
	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)

	// PNG magic number
	assert.True(t, bytes.HasPrefix(pngBytes, []byte("\x89PNG")))
}

func TestQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	pngBytes, err := svc.GenerateMagicLinkQR("abc")
	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)
}
