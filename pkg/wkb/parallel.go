package wkb

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/geofold/wkb/internal/decoder"
)

// decodeBatch validates preconditions, decodes every buffer (serially or
// with a worker pool), then runs validation and aggregation as a
// single-threaded reduction over the in-order results.
func decodeBatch(buffers [][]byte, opts DecodeOptions) (*Batch, error) {
	if err := decoder.CheckBatchInput(buffers, opts.Identifiers); err != nil {
		return nil, err
	}

	identifiers := opts.Identifiers
	if identifiers == nil {
		identifiers = decoder.DefaultIdentifiers(len(buffers))
	}
	crs := opts.CRS
	if crs == "" {
		crs = decoder.CRSUnknown
	}

	var geoms []decoder.Geometry
	var err error
	if opts.Parallel && len(buffers) > 1 {
		geoms, err = decodeParallel(buffers, identifiers, opts)
	} else {
		geoms, err = decodeSerial(buffers, identifiers, opts)
	}
	if err != nil {
		return nil, err
	}

	if opts.ValidateGeometry {
		for i := range geoms {
			if err := decoder.ValidateGeometry(&geoms[i]); err != nil {
				return nil, fmt.Errorf("element %d (%q): %w", i, identifiers[i], err)
			}
		}
	}

	internal, err := decoder.Aggregate(geoms, identifiers, crs)
	if err != nil {
		return nil, err
	}

	return newBatch(internal), nil
}

// decodeSerial decodes buffers one at a time, failing fast on the first
// error.
func decodeSerial(buffers [][]byte, identifiers []string, opts DecodeOptions) ([]decoder.Geometry, error) {
	geoms := make([]decoder.Geometry, len(buffers))
	for i, buf := range buffers {
		g, err := decoder.DecodeGeometry(buf)
		if err != nil {
			wrapped := fmt.Errorf("element %d (%q): %w", i, identifiers[i], err)
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "decode error: %v\n", wrapped)
			}
			return nil, wrapped
		}
		geoms[i] = g

		if opts.Progress != nil {
			opts.Progress(i+1, len(buffers))
		}
	}
	return geoms, nil
}

// decodeParallel decodes buffers with a worker pool. Each element's decode
// is fully independent; results are written back by input index so the
// returned slice matches input order. When multiple elements fail, the
// error for the lowest input index is returned.
func decodeParallel(buffers [][]byte, identifiers []string, opts DecodeOptions) ([]decoder.Geometry, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(buffers) {
		workers = len(buffers)
	}

	type decodeResult struct {
		index int
		geom  decoder.Geometry
		err   error
	}

	jobs := make(chan int, len(buffers))
	results := make(chan decodeResult, len(buffers))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				g, err := decoder.DecodeGeometry(buffers[index])
				results <- decodeResult{index: index, geom: g, err: err}
			}
		}()
	}

	for i := range buffers {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	geoms := make([]decoder.Geometry, len(buffers))
	done := 0
	errIndex := -1
	var firstErr error

	for result := range results {
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(buffers))
		}

		if result.err != nil {
			wrapped := fmt.Errorf("element %d (%q): %w",
				result.index, identifiers[result.index], result.err)
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "decode error: %v\n", wrapped)
			}
			if errIndex == -1 || result.index < errIndex {
				errIndex = result.index
				firstErr = wrapped
			}
			continue
		}

		geoms[result.index] = result.geom
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return geoms, nil
}
