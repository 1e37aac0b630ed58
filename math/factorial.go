package math

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrUndefined is returned by Factorial for negative input.
var ErrUndefined = errors.New("factorial is not defined for negative numbers")

// Factorial calculates n! with arbitrary precision.
// Negative n yields a nil result and ErrUndefined.
func Factorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, ErrUndefined
	}

	if n == 0 || n == 1 {
		return big.NewInt(1), nil
	}

	// MulRange bounds the product without an int64 counter that could wrap
	return new(big.Int).MulRange(2, n), nil
}
