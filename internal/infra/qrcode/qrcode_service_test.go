package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePNG_ProducesDecodablePNG(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")

	data, err := svc.GeneratePNG("geo:18.520430,73.856743")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestGeneratePNG_EmptyPayloadFails(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(128, "Q")

	_, err := svc.GeneratePNG("")
	require.Error(t, err)
}
