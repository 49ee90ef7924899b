package matrix

import "fmt"

// validatorErrorf tags err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, non-empty and square, and returns its
// order.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (zero rows), ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	if m.Rows() <= 0 {
		return 0, validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}
	if m.Rows() != m.Cols() {
		return 0, validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return m.Rows(), nil
}

// ValidateSameOrder checks that a and b are square matrices of the same order,
// returning that order.
// Complexity: O(1).
func ValidateSameOrder(a, b Matrix) (int, error) {
	n, err := ValidateSquare(a)
	if err != nil {
		return 0, err
	}
	m, err := ValidateSquare(b)
	if err != nil {
		return 0, err
	}
	if m != n {
		return 0, validatorErrorf("ValidateSameOrder", ErrDimensionMismatch)
	}

	return n, nil
}

// ValidateVecLen ensures x is non-nil with exactly n entries.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
