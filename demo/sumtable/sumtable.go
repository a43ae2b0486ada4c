// Package sumtable sums a table of values sequentially or split into
// parts summed by separate goroutines.
package sumtable

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrZeroParts is returned when table is split into zero parts.
	ErrZeroParts = errors.New("parts count can not be 0")

	// ErrTooManyParts is returned when table has fewer values than parts.
	ErrTooManyParts = errors.New("parts count should not be larger than the table size")
)

// Sequential returns sum of all values.
func Sequential(values []float64) float64 {
	r := 0.0
	for _, v := range values {
		r += v
	}

	return r
}

// Parallel splits values into parts, sums each part in its own goroutine
// without any shared state, then sums the partial results.
func Parallel(ctx context.Context, values []float64, parts int) (float64, error) {
	bounds, err := split(len(values), parts)
	if err != nil {
		return 0, err
	}

	sums := make([]float64, parts)
	g, ctx := errgroup.WithContext(ctx)

	for i, b := range bounds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			sums[i] = Sequential(values[b.start:b.end])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return Sequential(sums), nil
}

// ParallelMutex splits values into parts summed by separate goroutines
// which all add into one accumulator guarded by a lock.
func ParallelMutex(ctx context.Context, values []float64, parts int) (float64, error) {
	bounds, err := split(len(values), parts)
	if err != nil {
		return 0, err
	}

	var (
		lock   sync.Mutex
		result float64
	)

	g, ctx := errgroup.WithContext(ctx)

	for _, b := range bounds {
		g.Go(func() error {
			for _, v := range values[b.start:b.end] {
				if err := ctx.Err(); err != nil {
					return err
				}

				lock.Lock()
				result += v
				lock.Unlock()
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return result, nil
}

type bound struct {
	start, end int
}

// split divides size values into parts of equal length; last part
// also takes the remainder.
func split(size, parts int) ([]bound, error) {
	switch {
	case parts <= 0:
		return nil, fmt.Errorf("%w: got %d", ErrZeroParts, parts)
	case parts > size:
		return nil, fmt.Errorf("%w: %d parts for %d values", ErrTooManyParts, parts, size)
	}

	step := size / parts
	bounds := make([]bound, parts)

	for i := range bounds {
		bounds[i] = bound{start: i * step, end: (i + 1) * step}
	}

	bounds[parts-1].end = size

	return bounds, nil
}
