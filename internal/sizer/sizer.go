// Package sizer implements the size-targeted quality search: given a way
// to encode an image at an integer quality, it finds the highest quality
// whose encoded size lands inside a byte window.
package sizer

import "fmt"

// EncodeFunc encodes the subject image at the given quality. Each call is
// the expensive step of the search; the engine keeps the call count small
// (one binary search plus an occasional short linear refinement).
type EncodeFunc func(quality int) ([]byte, error)

// Window bounds the search: output size should land in [MinBytes, MaxBytes]
// using qualities from [MinQuality, MaxQuality].
type Window struct {
	MinBytes   int64
	MaxBytes   int64
	MinQuality int
	MaxQuality int
}

// Result is the chosen encoding: the bytes and the quality that produced
// them. Size is len(Data); kept explicit for reporting.
type Result struct {
	Data    []byte
	Quality int
}

// Size returns the encoded size in bytes.
func (r Result) Size() int64 { return int64(len(r.Data)) }

// Fit finds a quality in the window whose output fits [MinBytes, MaxBytes],
// preferring higher quality. The search never fails just because the window
// cannot be filled:
//
//   - If even MaxQuality stays below MinBytes, the MaxQuality encoding is
//     returned (content too simple to fill the window).
//   - If every probed quality overflows MaxBytes, the MinQuality encoding
//     is returned as-is, oversized.
//
// The only error source is encode itself; encode errors abort the search.
func Fit(encode EncodeFunc, w Window) (Result, error) {
	if w.MinQuality > w.MaxQuality {
		return Result{}, fmt.Errorf("empty quality range %d..%d", w.MinQuality, w.MaxQuality)
	}

	// Binary search for the highest quality that does not overflow MaxBytes.
	lo, hi := w.MinQuality, w.MaxQuality
	var best *Result
	for lo <= hi {
		q := (lo + hi) / 2
		data, err := encode(q)
		if err != nil {
			return Result{}, err
		}
		if int64(len(data)) > w.MaxBytes {
			hi = q - 1
		} else {
			best = &Result{Data: data, Quality: q}
			lo = q + 1
		}
	}

	if best == nil {
		data, err := encode(w.MinQuality)
		if err != nil {
			return Result{}, err
		}
		return Result{Data: data, Quality: w.MinQuality}, nil
	}

	// Undersized result: scan upward one quality step at a time, keeping
	// every encoding that still fits, stopping at the first overflow.
	if best.Size() < w.MinBytes && best.Quality < w.MaxQuality {
		for q := best.Quality + 1; q <= w.MaxQuality; q++ {
			data, err := encode(q)
			if err != nil {
				return Result{}, err
			}
			if int64(len(data)) > w.MaxBytes {
				break
			}
			best = &Result{Data: data, Quality: q}
		}
	}

	return *best, nil
}
