package calculator

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DisplayCapacity is the number of digit cells on the display
	DisplayCapacity = 16

	// internalCapacity keeps extra precision for computed values until display time
	internalCapacity = MaxScale + 1

	dotSymbol = '.'
)

// MaxMagnitude is the largest integer part the buffer can hold. It must stay
// consistent with DisplayCapacity.
var MaxMagnitude = decimal.RequireFromString(strings.Repeat("9", DisplayCapacity))

// Operand is one number as typed or displayed: a digit sequence, the position
// of the decimal point and a sign. The zero value is the canonical empty operand "0".
type Operand struct {
	digits []byte
	// dot is the number of digits before the decimal point; zero means no point
	dot          int
	negative     bool
	resetOnClear bool
}

// NewOperand returns the canonical empty operand
func NewOperand() Operand {
	return Operand{digits: []byte{'0'}}
}

// OperandFromDecimal lays out a decimal value in the operand buffer
func OperandFromDecimal(value decimal.Decimal) (Operand, error) {
	if value.Truncate(0).Abs().GreaterThan(MaxMagnitude) {
		return Operand{}, incorrectOperandError(value)
	}
	return layoutOperand(value.Abs().String(), value.IsNegative()), nil
}

// OperandFromFloat lays out a floating point value in the operand buffer
func OperandFromFloat(value float64) (Operand, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Operand{}, &Error{Kind: IncorrectOperand, Message: strconv.FormatFloat(value, 'g', -1, 64)}
	}
	return OperandFromDecimal(decimal.NewFromFloat(value))
}

// ParseDecimal parses a number typed or pasted as text. Both '.' and ','
// are accepted as the decimal point.
func ParseDecimal(text string) (decimal.Decimal, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, parsingError(err)
	}
	return d, nil
}

func layoutOperand(raw string, negative bool) Operand {
	if len(raw) > internalCapacity {
		raw = raw[:internalCapacity]
	}

	o := Operand{negative: negative}
	if i := strings.IndexByte(raw, dotSymbol); i >= 0 {
		o.digits = make([]byte, 0, len(raw)-1)
		o.digits = append(o.digits, raw[:i]...)
		o.digits = append(o.digits, raw[i+1:]...)
		o.dot = i
	} else {
		o.digits = []byte(raw)
	}
	if len(o.digits) == 0 {
		o.digits = []byte{'0'}
		o.dot = 0
	}
	if strings.Trim(string(o.digits), "0") == "" {
		o.negative = false
	}
	return o
}

// SendSymbol appends a digit or places the decimal point. It returns false
// when the symbol is rejected: the buffer is full, the point is already
// placed, or the symbol is neither a digit nor a point.
func (o *Operand) SendSymbol(symbol rune) bool {
	o.ensure()
	if !o.hasFreeSpace() {
		return false
	}
	if o.dot == 0 && isDot(symbol) {
		o.dot = len(o.digits)
		return true
	}
	if isDigit(symbol) {
		if o.isInternallyEmpty() && !o.dotIsLast() {
			o.digits = o.digits[:0]
		}
		o.digits = append(o.digits, byte(symbol))
		return true
	}
	return false
}

// SendErase deletes the most recent input. After a computation the operand
// is marked reset-on-clear and the whole value is wiped instead. It returns
// false when there is nothing to erase.
func (o *Operand) SendErase() bool {
	o.ensure()
	if o.resetOnClear {
		o.clear()
		return true
	}
	if o.dotIsLast() {
		o.dot = 0
		return true
	}
	if o.isInternallyEmpty() {
		return false
	}
	o.digits = o.digits[:len(o.digits)-1]
	if len(o.digits) == 0 {
		o.digits = append(o.digits, '0')
		o.negative = false
	}
	if o.dot > len(o.digits) {
		o.dot = len(o.digits)
	}
	return true
}

// String renders the numeric text of the operand without display truncation.
// A point after the last digit is omitted.
func (o Operand) String() string {
	digits := o.text()
	var b strings.Builder
	b.Grow(len(digits) + 2)
	if o.negative {
		b.WriteByte('-')
	}
	if o.dot == 0 || o.dot >= len(digits) {
		b.WriteString(digits)
		return b.String()
	}
	b.WriteString(digits[:o.dot])
	b.WriteByte(dotSymbol)
	b.WriteString(digits[o.dot:])
	return b.String()
}

// Display renders the operand as shown on the calculator: a freshly typed
// trailing point is kept and digits beyond DisplayCapacity are dropped from
// the end. Sign, point and a leading zero do not count against the capacity.
func (o Operand) Display() string {
	s := o.String()
	if o.dotIsLast() && o.hasFreeSpace() {
		s += string(dotSymbol)
	}

	count := 0
	leadingZero := false
	for i, r := range s {
		if !isDigit(r) {
			continue
		}
		if count == 0 && r == '0' && (i == 0 || s[i-1] == '-') {
			leadingZero = true
		}
		count++
	}
	if leadingZero {
		count--
	}

	extra := count - DisplayCapacity
	if extra <= 0 {
		return s
	}
	s = s[:len(s)-extra]
	return strings.TrimSuffix(s, string(dotSymbol))
}

// Decimal parses the operand into an exact decimal value
func (o Operand) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(o.String())
	if err != nil {
		return decimal.Zero, parsingError(err)
	}
	return d, nil
}

// DigitCount returns the number of digits shown, bounded by DisplayCapacity
func (o Operand) DigitCount() int {
	return min(len(o.text()), DisplayCapacity)
}

// IsNegative reports whether the operand carries a minus sign
func (o Operand) IsNegative() bool {
	return o.negative
}

// HasDot reports whether a decimal point has been placed
func (o Operand) HasDot() bool {
	return o.dot != 0
}

// IsEmpty reports whether the operand is the canonical cleared value "0"
func (o Operand) IsEmpty() bool {
	return o.isInternallyEmpty() && o.dot == 0
}

// ResetOnClear reports whether the next erase wipes the whole operand
func (o Operand) ResetOnClear() bool {
	return o.resetOnClear
}

func (o *Operand) setResetOnClear(value bool) {
	o.resetOnClear = value
}

// clone copies the digit buffer so the result can be mutated independently
func (o Operand) clone() Operand {
	o.digits = append([]byte(nil), o.digits...)
	return o
}

func (o *Operand) clear() {
	o.digits = append(o.digits[:0], '0')
	o.dot = 0
	o.negative = false
}

func (o *Operand) ensure() {
	if len(o.digits) == 0 {
		o.digits = append(o.digits, '0')
	}
}

func (o Operand) text() string {
	if len(o.digits) == 0 {
		return "0"
	}
	return string(o.digits)
}

func (o Operand) isInternallyEmpty() bool {
	return o.text() == "0"
}

func (o Operand) dotIsLast() bool {
	return o.dot != 0 && o.dot == len(o.text())
}

func (o Operand) hasFreeSpace() bool {
	return len(o.text()) < DisplayCapacity
}

func isDot(symbol rune) bool {
	return symbol == '.' || symbol == ','
}

func isDigit(symbol rune) bool {
	return symbol >= '0' && symbol <= '9'
}
