package wkb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestDecodeBatchParallelOrder tests that parallel decoding preserves
// input order in the aggregated result
func TestDecodeBatchParallelOrder(t *testing.T) {
	const n = 200
	buffers := make([][]byte, n)
	want := make([]Coordinate, n)
	for i := 0; i < n; i++ {
		buffers[i] = pointWKB(float64(i), float64(-i))
		want[i] = Coordinate{X: float64(i), Y: float64(-i)}
	}

	opts := DefaultDecodeOptions()
	opts.Parallel = true
	opts.Workers = 8

	batch, err := DecodeBatch(buffers, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(want, batch.MergedPoints()); diff != "" {
		t.Errorf("rows must follow input order (-want +got):\n%s", diff)
	}

	wantIDs := make([]string, n)
	for i := range wantIDs {
		wantIDs[i] = fmt.Sprintf("%d", i+1)
	}
	if diff := cmp.Diff(wantIDs, batch.Identifiers()); diff != "" {
		t.Errorf("identifiers must follow input order (-want +got):\n%s", diff)
	}
}

// TestDecodeBatchParallelError tests fail-fast semantics under the worker
// pool: the error for the lowest failing input index is returned and no
// partial batch escapes
func TestDecodeBatchParallelError(t *testing.T) {
	buffers := [][]byte{
		pointWKB(0, 0),
		appendHeader(nil, 7), // GeometryCollection, rejected
		pointWKB(1, 1),
		appendHeader(nil, 99), // unknown code, also rejected, higher index
	}

	opts := DefaultDecodeOptions()
	opts.Parallel = true
	opts.Workers = 4

	batch, err := DecodeBatch(buffers, opts)
	if batch != nil {
		t.Error("expected no partial result")
	}
	if !IsUnsupportedGeometryType(err) {
		t.Fatalf("expected the element-1 error to win, got %v", err)
	}
}

// TestDecodeBatchParallelMixed tests that the homogeneity check still
// runs after parallel decode
func TestDecodeBatchParallelMixed(t *testing.T) {
	opts := DefaultDecodeOptions()
	opts.Parallel = true

	_, err := DecodeBatch([][]byte{
		pointWKB(0, 0),
		lineStringWKB(Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 1}),
	}, opts)
	if !IsMixedGeometryTypes(err) {
		t.Fatalf("expected ErrMixedGeometryTypes, got %v", err)
	}
}

// TestDecodeBatchProgress tests the progress callback fires once per
// element in both modes
func TestDecodeBatchProgress(t *testing.T) {
	buffers := [][]byte{
		pointWKB(0, 0),
		pointWKB(1, 1),
		pointWKB(2, 2),
	}

	for _, parallel := range []bool{false, true} {
		name := "serial"
		if parallel {
			name = "parallel"
		}
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int64
			opts := DefaultDecodeOptions()
			opts.Parallel = parallel
			opts.Progress = func(done, total int) {
				calls.Add(1)
				if total != len(buffers) {
					t.Errorf("expected total %d, got %d", len(buffers), total)
				}
			}

			if _, err := DecodeBatch(buffers, opts); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if calls.Load() != int64(len(buffers)) {
				t.Errorf("expected %d progress calls, got %d", len(buffers), calls.Load())
			}
		})
	}
}

// TestDecodeBatchWorkerDefaults tests the worker-count clamps
func TestDecodeBatchWorkerDefaults(t *testing.T) {
	// More workers than buffers, and zero workers, must both decode fine
	for _, workers := range []int{0, 64} {
		opts := DefaultDecodeOptions()
		opts.Parallel = true
		opts.Workers = workers

		batch, err := DecodeBatch([][]byte{pointWKB(1, 2), pointWKB(3, 4)}, opts)
		if err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}
		if batch.Len() != 2 {
			t.Errorf("workers=%d: expected 2 elements, got %d", workers, batch.Len())
		}
	}
}
