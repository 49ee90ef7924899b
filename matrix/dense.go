package matrix

import "fmt"

// Dense is a row-major matrix of float64 values stored in one flat slice.
type Dense struct {
	r, c int       // rows, columns
	data []float64 // len(data) == r*c; element (i,j) at data[i*c+j]
}

var _ Matrix = (*Dense)(nil)

// denseErrorf wraps err with the Dense method and position.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates a rows×cols zero matrix.
// Complexity: O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a slice of equally long rows into a new Dense.
// An empty input or empty first row yields ErrInvalidDimensions; a row whose
// length differs from the first yields ErrDimensionMismatch.
// Complexity: O(rows*cols).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	var i int
	for i = range rows {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), m.c, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf returns the flat offset of (row, col) or ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). Any float64, NaN included, is stored as given;
// value policy belongs to the consumer.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}
