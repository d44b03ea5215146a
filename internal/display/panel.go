// Package display renders the calculator's LCD panel as a single text line.
package display

import (
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

const (
	// ErrorIndicator is lit after a failed command
	ErrorIndicator = 'e'

	// MemoryIndicator is lit while the memory cell holds a non-zero value
	MemoryIndicator = 'M'

	// Width is the operand field width: every digit cell plus sign and point
	Width = calculator.DisplayCapacity + 2

	indicatorCells = 3
)

// Panel is the content of the calculator display
type Panel struct {
	Error   bool
	Memory  bool
	Operand string
}

// Line renders the panel: the indicator cells followed by the operand
// right-aligned in a field of Width cells. An error shows "0".
func (p Panel) Line() string {
	var b strings.Builder
	b.Grow(indicatorCells + Width)

	b.WriteRune(indicator(p.Error, ErrorIndicator))
	b.WriteRune(indicator(p.Memory, MemoryIndicator))
	b.WriteByte(' ')

	operand := p.Operand
	if p.Error || operand == "" {
		operand = "0"
	}
	if pad := Width - len(operand); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(operand)
	return b.String()
}

// String implements fmt.Stringer
func (p Panel) String() string {
	return p.Line()
}

func indicator(lit bool, symbol rune) rune {
	if lit {
		return symbol
	}
	return ' '
}
