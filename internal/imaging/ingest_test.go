// internal/imaging/ingest_test.go
package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func decodePayload(t *testing.T, payload string) image.Image {
	t.Helper()

	require.True(t, strings.HasPrefix(payload, "data:image/jpeg;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload, "data:image/jpeg;base64,"))
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestIngestDownscalesOversizedLandscape(t *testing.T) {
	pipeline := NewPipeline(1200, 60)

	payload, err := pipeline.Ingest(encodePNG(t, 2000, 1000))
	require.NoError(t, err)

	img := decodePayload(t, payload)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestIngestDownscalesOversizedPortrait(t *testing.T) {
	pipeline := NewPipeline(1200, 60)

	payload, err := pipeline.Ingest(encodePNG(t, 900, 2400))
	require.NoError(t, err)

	img := decodePayload(t, payload)
	assert.Equal(t, 450, img.Bounds().Dx())
	assert.Equal(t, 1200, img.Bounds().Dy())
}

func TestIngestKeepsImagesWithinBounds(t *testing.T) {
	pipeline := NewPipeline(1200, 60)

	payload, err := pipeline.Ingest(encodePNG(t, 400, 300))
	require.NoError(t, err)

	img := decodePayload(t, payload)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestIngestSquareAtBoundIsUntouched(t *testing.T) {
	pipeline := NewPipeline(1200, 60)

	payload, err := pipeline.Ingest(encodePNG(t, 1200, 1200))
	require.NoError(t, err)

	img := decodePayload(t, payload)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 1200, img.Bounds().Dy())
}

func TestIngestRejectsGarbage(t *testing.T) {
	pipeline := NewPipeline(1200, 60)

	_, err := pipeline.Ingest([]byte("this is not an image"))

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
