// Package matrix multiplies small dense matrices, either sequentially
// or with one goroutine per cell of the result.
package matrix

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrIncompatible is returned when matrices can not be multiplied.
var ErrIncompatible = errors.New("matrices have incompatible sizes")

// Matrix is dense matrix of float64 values stored row by row.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// New returns zero matrix with given size.
func New(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// FromRows returns matrix holding supplied rows. All rows must have
// the same length.
func FromRows(rows ...[]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}

	m := New(len(rows), len(rows[0]))

	for i, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), m.cols)
		}

		copy(m.data[i*m.cols:], row)
	}

	return m, nil
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// Row returns copy of i-th row.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])

	return row
}

// Col returns copy of j-th column.
func (m *Matrix) Col(j int) []float64 {
	col := make([]float64, m.rows)
	for i := range col {
		col[i] = m.At(i, j)
	}

	return col
}

func (m *Matrix) String() string {
	b := strings.Builder{}

	for i := range m.rows {
		b.WriteString("[ ")

		for j := range m.cols {
			b.WriteString(strconv.FormatFloat(m.At(i, j), 'g', -1, 64))
			b.WriteString(" ")
		}

		b.WriteString("]\n")
	}

	return b.String()
}

// Sequential returns a × b computed in calling goroutine.
func Sequential(a, b *Matrix) (*Matrix, error) {
	if err := checkSizes(a, b); err != nil {
		return nil, err
	}

	m := New(a.rows, b.cols)

	for i := range a.rows {
		for j := range b.cols {
			m.Set(i, j, dot(a.Row(i), b.Col(j)))
		}
	}

	return m, nil
}

// Parallel returns a × b where every cell of result is computed
// in its own goroutine.
func Parallel(ctx context.Context, a, b *Matrix) (*Matrix, error) {
	if err := checkSizes(a, b); err != nil {
		return nil, err
	}

	m := New(a.rows, b.cols)
	g, ctx := errgroup.WithContext(ctx)

	for i := range a.rows {
		for j := range b.cols {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				// each goroutine writes distinct cell
				m.Set(i, j, dot(a.Row(i), b.Col(j)))

				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

func checkSizes(a, b *Matrix) error {
	if a.cols != b.rows {
		return fmt.Errorf("%w: %dx%d and %dx%d", ErrIncompatible, a.rows, a.cols, b.rows, b.cols)
	}

	return nil
}

func dot(a, b []float64) float64 {
	r := 0.0
	for i := range a {
		r += a[i] * b[i]
	}

	return r
}
