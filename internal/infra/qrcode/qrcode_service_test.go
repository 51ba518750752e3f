package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"storefront/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: tt.level}})
			assert.Equal(t, tt.want, svc.(*qrcodeService).errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateInvoiceQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	qrBytes, err := svc.GenerateInvoiceQR("INV-20240312-ABCDEF12")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateInvoiceQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: size}})

		qrBytes, err := svc.GenerateInvoiceQR("INV-20240312-ABCDEF12")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_GenerateInvoiceQR_EmptyReference(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.GenerateInvoiceQR("")
	assert.Error(t, err)
}
