// Package codec performs the actual image work: HEIC/HEIF decoding and
// JPEG encoding at a caller-chosen quality. The Codec interface is what the
// pipeline consumes, so tests can substitute a fake with scripted behavior.
package codec

import (
	"errors"
	"image"
)

// ErrDecoderUnavailable is returned by Ready when the HEIF decoder cannot
// be registered. It is fatal for a whole batch: no file can be decoded
// without it. The message names the remediation.
var ErrDecoderUnavailable = errors.New(
	"HEIF decoder unavailable: this build lacks HEIC support " +
		"(rebuild with CGO_ENABLED=1 so the bundled libde265 decoder is compiled in)")

// Codec decodes source images and encodes JPEG output.
//
// Encoder settings other than quality are fixed by the implementation:
// 4:2:0 chroma subsampling for color images and baseline Huffman coding.
// The quality search only varies the quality parameter.
type Codec interface {
	// Ready prepares the decoder, idempotently; the first call performs the
	// one-time registration. A failure means no HEIC source can be decoded
	// and aborts the batch before any file is touched.
	Ready() error

	// Decode reads and decodes the image at path into a pixel buffer
	// normalized for repeated JPEG encoding.
	Decode(path string) (image.Image, error)

	// Encode encodes img as JPEG at the given quality (1..100).
	Encode(img image.Image, quality int) ([]byte, error)
}
