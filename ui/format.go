package ui

import (
	"fmt"
	"io"
	"math/big"

	"github.com/fatih/color"
)

const (
	parseErrorText = "Ошибка: введите целое число!"
	undefinedText  = "Факториал не определяется для отрицательных чисел"
	resultPrefix   = "Результат: "
)

// ParseErrorMessage is printed when the input is not an integer.
func ParseErrorMessage() string { return parseErrorText }

// UndefinedMessage is printed for negative input.
func UndefinedMessage() string { return undefinedText }

// ResultMessage formats a computed factorial.
func ResultMessage(v *big.Int) string { return resultPrefix + v.String() }

// Printer writes exactly one outcome line per call.
type Printer struct {
	out   io.Writer
	color bool
}

func NewPrinter(out io.Writer, colored bool) *Printer {
	return &Printer{out: out, color: colored}
}

func (p *Printer) ParseError() error {
	return p.println(paint(ParseErrorMessage(), p.color, color.FgHiRed))
}

func (p *Printer) Undefined() error {
	return p.println(paint(UndefinedMessage(), p.color, color.FgHiYellow))
}

func (p *Printer) Result(v *big.Int) error {
	return p.println(paint(ResultMessage(v), p.color, color.FgHiGreen))
}

func (p *Printer) println(line string) error {
	_, err := fmt.Fprintln(p.out, line)
	return err
}
