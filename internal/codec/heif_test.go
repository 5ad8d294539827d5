package codec

import (
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noisyImage builds a photo-like test image: random per-pixel color keeps
// the JPEG entropy coder busy, so size responds to quality.
func noisyImage(w, h int) image.Image {
	rng := rand.New(rand.NewSource(42))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	return img
}

func TestReady_Idempotent(t *testing.T) {
	resetRegistration()
	c := NewHEIF()
	require.NoError(t, c.Ready())
	require.NoError(t, c.Ready())
}

// The quality search assumes that raising the quality never strictly
// shrinks the output. This pins the assumption down for the encoder in use.
func TestEncode_SizeMonotonicOverQuality(t *testing.T) {
	c := NewHEIF()
	img := noisyImage(256, 256)

	qualities := []int{40, 50, 60, 70, 80, 90, 95}
	var prev int
	for _, q := range qualities {
		data, err := c.Encode(img, q)
		require.NoError(t, err, "quality %d", q)
		require.NotEmpty(t, data)
		assert.GreaterOrEqual(t, len(data), prev,
			"quality %d produced smaller output than the previous step", q)
		prev = len(data)
	}
}

func TestEncode_QualitySpread(t *testing.T) {
	c := NewHEIF()
	img := noisyImage(256, 256)

	low, err := c.Encode(img, 40)
	require.NoError(t, err)
	high, err := c.Encode(img, 95)
	require.NoError(t, err)
	assert.Greater(t, len(high), len(low),
		"quality 95 should cost more bytes than quality 40 on noisy content")
}

func TestDecode_MissingFile(t *testing.T) {
	c := NewHEIF()
	_, err := c.Decode(filepath.Join(t.TempDir(), "nope.heic"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.heic")
}

func TestDecode_GarbageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.heic")
	require.NoError(t, os.WriteFile(path, []byte("this is not an image"), 0o644))

	c := NewHEIF()
	_, err := c.Decode(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.heic")
}

// Round-trip through a real on-disk JPEG: Decode must handle anything the
// image package recognizes, since the HEIF registration goes through the
// same mechanism.
func TestDecode_JPEGRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")

	c := NewHEIF()
	data, err := c.Encode(noisyImage(64, 64), 85)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	img, err := c.Decode(path)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}
