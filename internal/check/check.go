// Package check provides codec diagnostics (--check mode): decoder
// registration, a JPEG encode self-test, and a spot check of the
// size-monotonicity assumption the quality search relies on.
package check

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/tkarwowski/heicfit/internal/codec"
	"github.com/tkarwowski/heicfit/internal/config"
	"github.com/tkarwowski/heicfit/internal/display"
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check stays
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow. Informational: it reports
// every probe and returns false only if something required is broken.
func RunCheck(cfg *config.Config, log Logger, c codec.Codec) bool {
	log.Info("=== Codec Check ===")
	ok := true

	if err := c.Ready(); err != nil {
		log.Error("HEIF decoder: %v", err)
		ok = false
	} else {
		log.Success("HEIF decoder registered")
	}

	img := selfTestImage(320, 320)
	mid, err := c.Encode(img, 85)
	if err != nil {
		log.Error("JPEG encode self-test failed: %v", err)
		ok = false
	} else {
		log.Success("JPEG encode works (%s at quality 85)", display.FormatSize(int64(len(mid))))
	}

	if ok {
		checkMonotonicity(log, c, img)
	}

	log.Info("Size window: %s .. %s at qualities %d..%d",
		display.FormatSize(cfg.MinBytes), display.FormatSize(cfg.MaxBytes),
		cfg.QualityMin, cfg.QualityMax)
	return ok
}

// checkMonotonicity encodes the self-test image at the quality extremes and
// warns if higher quality came out smaller; the search bisects on that
// assumption.
func checkMonotonicity(log Logger, c codec.Codec, img image.Image) {
	low, errLow := c.Encode(img, 40)
	high, errHigh := c.Encode(img, 95)
	if errLow != nil || errHigh != nil {
		log.Warn("Could not verify size monotonicity")
		return
	}
	if len(high) < len(low) {
		log.Warn("Encoder size not monotone over quality (q40=%d B, q95=%d B)", len(low), len(high))
		return
	}
	log.Success("Encoded size grows with quality (q40=%s, q95=%s)",
		display.FormatSize(int64(len(low))), display.FormatSize(int64(len(high))))
}

// selfTestImage builds a noisy image so the encoder has real entropy to
// chew on; flat fills compress to nearly nothing at every quality.
func selfTestImage(w, h int) image.Image {
	rng := rand.New(rand.NewSource(7))
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
