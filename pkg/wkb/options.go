package wkb

import (
	"io"
	"runtime"
)

// DecodeOptions configures batch decoding behavior.
type DecodeOptions struct {
	// Identifiers are the per-element identifiers, parallel to the
	// buffer slice. If nil, positional identifiers "1".."n" are
	// assigned. A non-nil slice whose length differs from the buffer
	// count is rejected before any decoding.
	Identifiers []string

	// CRS is an opaque coordinate-reference-system descriptor attached
	// to the result unchanged. If empty, "unknown" is used.
	CRS string

	// ValidateGeometry enables strict validity checks after decoding:
	// closed rings with at least 4 points, linestrings with at least 2
	// points, finite coordinates.
	// Default: false (the decoder trusts the wire, as WKB permits).
	ValidateGeometry bool

	// Parallel enables concurrent decoding of batch elements.
	// Results are collected back into input order before the
	// homogeneity check and aggregation run.
	Parallel bool

	// Workers specifies the number of decoder goroutines.
	// If 0, defaults to runtime.NumCPU(). Only used when Parallel is true.
	Workers int

	// Progress is an optional callback invoked after each element is
	// decoded. Parameters: (done, total).
	Progress func(done, total int)

	// ErrorLog is an optional writer for decode error details.
	ErrorLog io.Writer
}

// DefaultDecodeOptions returns decode options with defaults.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		Identifiers:      nil,
		CRS:              "",
		ValidateGeometry: false,
		Parallel:         false,
		Workers:          runtime.NumCPU(),
	}
}
