package pipeline

import (
	"fmt"
	"os"

	"github.com/tkarwowski/heicfit/internal/display"
	"github.com/tkarwowski/heicfit/internal/naming"
	"github.com/tkarwowski/heicfit/internal/sizer"
)

// convertFile handles one source: decode, size-targeted quality search,
// write. The target is the source path with a .jpg extension and is
// overwritten unconditionally if it already exists. The returned kind
// classifies the failure when err is non-nil.
func (r *Runner) convertFile(src string) (Result, ErrorKind, error) {
	img, err := r.codec.Decode(src)
	if err != nil {
		return Result{}, KindDecode, err
	}

	encode := func(q int) ([]byte, error) {
		data, err := r.codec.Encode(img, q)
		if err == nil {
			r.log.Debug("  try quality %d -> %s", q, display.FormatSize(int64(len(data))))
		}
		return data, err
	}

	fit, err := sizer.Fit(encode, r.window)
	if err != nil {
		return Result{}, KindEncode, err
	}

	target := naming.TargetPath(src)
	if err := os.WriteFile(target, fit.Data, 0o644); err != nil {
		return Result{}, KindWrite, fmt.Errorf("write %s: %w", target, err)
	}

	return Result{
		Source:    src,
		Target:    target,
		Quality:   fit.Quality,
		SizeBytes: fit.Size(),
	}, "", nil
}
