package growth

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// DefaultSizes are the input sizes the demonstration table is built from.
var DefaultSizes = []int{10, 100, 1000, 10000}

// ErrNonPositiveSize is returned when a requested input size is zero or
// negative; log2 is undefined there.
var ErrNonPositiveSize = errors.New("growth: input size must be positive")

// Row holds the operation-count estimates for one input size.
type Row struct {
	N            int
	Linear       float64
	Linearithmic float64
	Quadratic    float64
}

// Compare computes a Row per input size: n itself, n·log₂(n) and n². The
// log₂ factor is the number of times n can be halved, which is where the
// divide-and-conquer sorts spend their levels.
func Compare(sizes []int) ([]Row, error) {
	rows := make([]Row, 0, len(sizes))
	for _, n := range sizes {
		if n <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrNonPositiveSize, n)
		}
		f := float64(n)
		rows = append(rows, Row{
			N:            n,
			Linear:       f,
			Linearithmic: f * math.Log2(f),
			Quadratic:    f * f,
		})
	}
	return rows, nil
}

// Fprint renders rows as an aligned four-column table.
func Fprint(w io.Writer, rows []Row) {
	fmt.Fprintf(w, "%-15s | %-15s | %-25s | %-15s\n",
		"Input Size (n)", "Linear (n)", "Linearithmic (n log n)", "Quadratic (n²)")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, r := range rows {
		fmt.Fprintf(w, "%-15d | %-15.0f | %-25.2f | %-15.0f\n",
			r.N, r.Linear, r.Linearithmic, r.Quadratic)
	}
}

// Print renders rows to standard output.
func Print(rows []Row) {
	Fprint(os.Stdout, rows)
}
