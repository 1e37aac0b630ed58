package math

import (
	stdmath "math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotInteger is returned by ParseInput when the line is not a base-10 integer.
var ErrNotInteger = errors.New("input is not an integer")

// ParseInput parses one line of user input as an integer.
//
// Surrounding whitespace is ignored and a leading sign is allowed. Negative
// values below the int64 range clamp to math.MinInt64, since only their sign
// matters to Factorial; positive values above it are rejected with
// ErrNotInteger, so callers report them like any other unusable input.
func ParseInput(line string) (int64, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return 0, errors.Wrap(ErrNotInteger, "empty input")
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, errors.Wrapf(ErrNotInteger, "parse %q", s)
	}

	if v.IsInt64() {
		return v.Int64(), nil
	}
	if v.Sign() < 0 {
		return stdmath.MinInt64, nil
	}

	return 0, errors.Wrapf(ErrNotInteger, "%s exceeds the supported range", s)
}
