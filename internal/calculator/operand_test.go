package calculator

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typed(keys string) Operand {
	o := NewOperand()
	for _, r := range keys {
		o.SendSymbol(r)
	}
	return o
}

func TestOperandSendSymbol(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		expected string
	}{
		{name: "Empty operand", keys: "", expected: "0"},
		{name: "Single digit", keys: "5", expected: "5"},
		{name: "Leading zeros are replaced", keys: "007", expected: "7"},
		{name: "Fraction", keys: "0.5", expected: "0.5"},
		{name: "Point on empty operand", keys: ".", expected: "0."},
		{name: "Point then digit", keys: ".25", expected: "0.25"},
		{name: "Second point is ignored", keys: "1.2.3", expected: "1.23"},
		{name: "Comma is a point", keys: "3,14", expected: "3.14"},
		{name: "Trailing zeros are kept while typing", keys: "0.000", expected: "0.000"},
		{name: "Full buffer", keys: "1234567890123456", expected: "1234567890123456"},
		{name: "Digits beyond capacity are rejected", keys: "12345678901234567890", expected: "1234567890123456"},
		{name: "Point after full buffer is rejected", keys: "1234567890123456.", expected: "1234567890123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := typed(tt.keys)
			assert.Equal(t, tt.expected, o.Display())
			assert.LessOrEqual(t, len(o.digits), DisplayCapacity)
		})
	}
}

func TestOperandSendSymbolRejections(t *testing.T) {
	o := typed("1.5")
	assert.False(t, o.SendSymbol('.'), "second point should be rejected")
	assert.False(t, o.SendSymbol('x'), "non-digit should be rejected")
	assert.True(t, o.SendSymbol('7'))

	full := typed("1234567890123456")
	assert.False(t, full.SendSymbol('1'), "full buffer should reject digits")
	assert.False(t, full.SendSymbol('.'), "full buffer should reject the point")
}

func TestOperandZeroValue(t *testing.T) {
	var o Operand
	assert.Equal(t, "0", o.Display())
	assert.True(t, o.IsEmpty())
	assert.True(t, o.SendSymbol('4'))
	assert.Equal(t, "4", o.Display())
}

func TestOperandSendErase(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		erases   int
		expected string
		accepted bool
	}{
		{name: "Delete last digit", keys: "123", erases: 1, expected: "12", accepted: true},
		{name: "Delete fraction digit", keys: "1.5", erases: 1, expected: "1.", accepted: true},
		{name: "Point is removed before digits", keys: "1.5", erases: 2, expected: "1", accepted: true},
		{name: "Last digit becomes zero", keys: "5", erases: 1, expected: "0", accepted: true},
		{name: "Point on zero", keys: ".", erases: 1, expected: "0", accepted: true},
		{name: "Empty operand is unchanged", keys: "", erases: 1, expected: "0", accepted: false},
		{name: "Erase everything", keys: "42", erases: 3, expected: "0", accepted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := typed(tt.keys)
			var accepted bool
			for i := 0; i < tt.erases; i++ {
				accepted = o.SendErase()
			}
			assert.Equal(t, tt.expected, o.Display())
			assert.Equal(t, tt.accepted, accepted)
		})
	}
}

func TestOperandEraseIsIdempotentWhenEmpty(t *testing.T) {
	o := NewOperand()
	for i := 0; i < 3; i++ {
		assert.False(t, o.SendErase())
		assert.Equal(t, "0", o.Display())
		assert.True(t, o.IsEmpty())
	}
}

func TestOperandResetOnClear(t *testing.T) {
	o, err := OperandFromDecimal(decimal.RequireFromString("-12.5"))
	require.NoError(t, err)

	o.setResetOnClear(true)
	assert.True(t, o.SendErase())
	assert.Equal(t, "0", o.Display())
	assert.False(t, o.IsNegative())
	assert.False(t, o.HasDot())
}

func TestOperandFromDecimal(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		negative bool
	}{
		{name: "Integer", value: "42", expected: "42"},
		{name: "Fraction", value: "12.5", expected: "12.5"},
		{name: "Negative fraction", value: "-3.25", expected: "-3.25", negative: true},
		{name: "Negative below one", value: "-0.5", expected: "-0.5", negative: true},
		{name: "Maximum magnitude", value: "9999999999999999", expected: "9999999999999999"},
		{name: "Long fraction is cut at display time", value: "0.3333333333333333333333333333", expected: "0.3333333333333333"},
		{name: "Fraction beyond full integer part", value: "1234567890123456.78", expected: "1234567890123456"},
		{name: "Trailing zeros are dropped", value: "1.500", expected: "1.5"},
		{name: "Zero", value: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := OperandFromDecimal(decimal.RequireFromString(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, o.Display())
			assert.Equal(t, tt.negative, o.IsNegative())
			assert.False(t, o.ResetOnClear())
		})
	}
}

func TestOperandFromDecimalKeepsInternalPrecision(t *testing.T) {
	o, err := OperandFromDecimal(decimal.RequireFromString("0.3333333333333333333333333333"))
	require.NoError(t, err)

	d, err := o.Decimal()
	require.NoError(t, err)
	assert.Equal(t, "0.333333333333333333333333333", d.String())
}

func TestOperandFromDecimalOutOfRange(t *testing.T) {
	for _, value := range []string{"10000000000000000", "-10000000000000000.5", "123456789012345678901"} {
		t.Run(value, func(t *testing.T) {
			_, err := OperandFromDecimal(decimal.RequireFromString(value))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncorrectOperand)
		})
	}
}

func TestOperandFromFloat(t *testing.T) {
	o, err := OperandFromFloat(2.5)
	require.NoError(t, err)
	assert.Equal(t, "2.5", o.Display())

	o, err = OperandFromFloat(-0.125)
	require.NoError(t, err)
	assert.Equal(t, "-0.125", o.Display())

	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e17} {
		_, err := OperandFromFloat(value)
		assert.ErrorIs(t, err, ErrIncorrectOperand, "value %v", value)
	}
}

func TestOperandDecimal(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		expected string
	}{
		{name: "Integer", keys: "123", expected: "123"},
		{name: "Trailing point", keys: "7.", expected: "7"},
		{name: "Fraction", keys: "0.05", expected: "0.05"},
		{name: "Empty", keys: "", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := typed(tt.keys).Decimal()
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(d), "got %s", d)
		})
	}
}

func TestOperandDecimalParsingFailure(t *testing.T) {
	o := Operand{digits: []byte("1x2")}
	_, err := o.Decimal()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParsingFailure)
}

func TestOperandRoundTrip(t *testing.T) {
	tests := []struct {
		keys     string
		expected string
	}{
		{keys: "123", expected: "123"},
		{keys: "0.5", expected: "0.5"},
		{keys: "123.450", expected: "123.45"},
		{keys: "1234567890123456", expected: "1234567890123456"},
		{keys: "1.234567890123456", expected: "1.234567890123456"},
		{keys: "0.000000000000001", expected: "0.000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			d, err := typed(tt.keys).Decimal()
			require.NoError(t, err)

			o, err := OperandFromDecimal(d)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, o.Display())
		})
	}
}

func TestOperandDigitCount(t *testing.T) {
	assert.Equal(t, 1, NewOperand().DigitCount())
	assert.Equal(t, 3, typed("1.23").DigitCount())

	o, err := OperandFromDecimal(decimal.RequireFromString("0.3333333333333333333333333333"))
	require.NoError(t, err)
	assert.Equal(t, DisplayCapacity, o.DigitCount())
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{text: "42", expected: "42"},
		{text: " -3.5 ", expected: "-3.5"},
		{text: "3,14", expected: "3.14"},
		{text: "1e3", expected: "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d, err := ParseDecimal(tt.text)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(d), "got %s", d)
		})
	}

	for _, text := range []string{"", "abc", "1..2"} {
		_, err := ParseDecimal(text)
		assert.ErrorIs(t, err, ErrParsingFailure, "text %q", text)
	}
}
