package terminal

import (
	"io"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/config"
	"github.com/vadiminshakov/factorial/math"
	"github.com/vadiminshakov/factorial/ui"
)

//go:generate mockgen -destination=mock_reader_test.go -package=terminal github.com/vadiminshakov/factorial/ui LineReader

// Outcome is the terminal state of a single run.
type Outcome int

const (
	OutcomeParseError Outcome = iota + 1
	OutcomeUndefined
	OutcomeResult
)

func (o Outcome) String() string {
	switch o {
	case OutcomeParseError:
		return "parse error"
	case OutcomeUndefined:
		return "undefined"
	case OutcomeResult:
		return "result"
	default:
		return "unknown"
	}
}

// Run reads one line from r, computes its factorial and writes exactly one
// message line to w. Only read and write failures are returned as errors;
// bad or negative input is reported through the Outcome.
func Run(r ui.LineReader, w io.Writer, cfg config.Config) (Outcome, error) {
	line, err := r.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, errors.Wrap(err, "read input")
	}

	p := ui.NewPrinter(w, cfg.Color)

	n, err := math.ParseInput(line)
	if err != nil {
		return OutcomeParseError, p.ParseError()
	}

	result, err := math.Factorial(n)
	if errors.Is(err, math.ErrUndefined) {
		return OutcomeUndefined, p.Undefined()
	}
	if err != nil {
		return 0, err
	}

	return OutcomeResult, p.Result(result)
}
