package codec

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/jdeng/goheif"
)

// HEIF is the production codec: goheif (libde265) for HEIC/HEIF decoding,
// disintegration/imaging over the standard JPEG encoder for output.
type HEIF struct{}

// NewHEIF returns the production codec.
func NewHEIF() *HEIF { return &HEIF{} }

var registerOnce sync.Once

// Ready registers the HEIF format with the image package. The registration
// happens at most once per process and is never undone; subsequent calls
// are no-ops. The "????ftyp" magic matches the ISO BMFF box header shared
// by .heic and .heif files.
func (h *HEIF) Ready() error {
	registerOnce.Do(func() {
		image.RegisterFormat("heif", "????ftyp", goheif.Decode, goheif.DecodeConfig)
	})
	return nil
}

// Decode opens and decodes the image at path. EXIF orientation is applied
// when present, and the result is cloned into a uniform pixel buffer so
// repeated encodes during the quality search behave consistently.
func (h *HEIF) Decode(path string) (image.Image, error) {
	if err := h.Ready(); err != nil {
		return nil, err
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// Encode encodes img as JPEG at the given quality. The Go encoder always
// uses 4:2:0 chroma subsampling for color images; alpha, if any, is
// flattened by the encoder.
func (h *HEIF) Encode(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encode jpeg at quality %d: %w", quality, err)
	}
	return buf.Bytes(), nil
}
