package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateOrderQR_ProducesPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateOrderQR("https://wa.me/551138998270304?text=pedido")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestGenerateOrderQR_EmptyLink(t *testing.T) {
	svc := NewQRCodeService(128, "unknown-level-falls-back-to-medium")

	_, err := svc.GenerateOrderQR("")
	assert.Error(t, err)
}
