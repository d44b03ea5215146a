package calculator

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Operator is a calculator operation tag
type Operator int

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
	Power
	NaturalLog
	Sine
	Cosine
)

const (
	// MaxScale is the number of fractional digits kept by every checked operation
	MaxScale = 28

	// PowerFractionDigits is the rounding applied to power results. The
	// logarithmic path leaves noisy trailing digits, so the result is cut to
	// the display capacity minus one cell for the sign and one for the leading zero.
	PowerFractionDigits = DisplayCapacity - 2

	// exactPowerDigits bounds the fractional expansion of an exact integer power
	exactPowerDigits = 2048

	// trigScale is the working precision of the sine and cosine series
	trigScale = MaxScale + 12
)

var (
	// decimalCeiling is the largest magnitude a checked operation may produce
	decimalCeiling = decimal.RequireFromString("79228162514264337593543950335")

	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)

	// ln(decimalCeiling) rounded up, and the point below which exp rounds to zero
	expCeiling = decimal.RequireFromString("66.55")
	expFloor   = decimal.RequireFromString("-80")

	// π and 2π carry enough digits to reduce any buffer value exactly to trigScale
	halfTurn = decimal.RequireFromString("3.1415926535897932384626433832795028841971693993751058209749445923")
	fullTurn = decimal.RequireFromString("6.2831853071795864769252867665590057683943387987502116419498891846")

	trigEpsilon = decimal.New(1, -trigScale)

	minInt32 = decimal.NewFromInt(math.MinInt32)
	maxInt32 = decimal.NewFromInt(math.MaxInt32)
)

var operatorSymbols = map[rune]Operator{
	'+': Add,
	'-': Subtract,
	'*': Multiply,
	'/': Divide,
	'^': Power,
}

var operatorNames = map[Operator]string{
	Add:        "+",
	Subtract:   "-",
	Multiply:   "*",
	Divide:     "/",
	Power:      "^",
	NaturalLog: "ln",
	Sine:       "sin",
	Cosine:     "cos",
}

// ParseOperator converts a keyboard operator character into an Operator
func ParseOperator(symbol rune) (Operator, error) {
	op, ok := operatorSymbols[symbol]
	if !ok {
		return 0, incorrectOperationError(symbol)
	}
	return op, nil
}

// IsOperatorSymbol reports whether symbol is one of the operator characters / + - * ^
func IsOperatorSymbol(symbol rune) bool {
	_, ok := operatorSymbols[symbol]
	return ok
}

// OperatorByName resolves a symbolic or spelled-out operator name ("+", "add", "ln", ...)
func OperatorByName(name string) (Operator, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "+", "add", "plus":
		return Add, true
	case "-", "sub", "subtract", "minus":
		return Subtract, true
	case "*", "mul", "multiply", "times":
		return Multiply, true
	case "/", "div", "divide":
		return Divide, true
	case "^", "pow", "power":
		return Power, true
	case "ln", "log":
		return NaturalLog, true
	case "sin", "sine":
		return Sine, true
	case "cos", "cosine":
		return Cosine, true
	}
	return 0, false
}

// String returns the display symbol of the operator
func (o Operator) String() string {
	name, ok := operatorNames[o]
	if !ok {
		return "?"
	}
	return name
}

// IsUnary reports whether the operator consumes a single operand
func (o Operator) IsUnary() bool {
	switch o {
	case NaturalLog, Sine, Cosine:
		return true
	default:
		return false
	}
}

// Apply evaluates the operator. Binary operators require right to be valid.
// The result is range checked against the buffer and normalized.
func (o Operator) Apply(left decimal.Decimal, right decimal.NullDecimal) (decimal.Decimal, error) {
	var (
		result decimal.Decimal
		err    error
	)

	switch o {
	case Add, Subtract, Multiply, Divide, Power:
		if !right.Valid {
			return decimal.Zero, &Error{Kind: OperandIsMissing, Operator: o}
		}
	}

	switch o {
	case Add:
		result, err = checked(left.Add(right.Decimal))
	case Subtract:
		result, err = checked(left.Sub(right.Decimal))
	case Multiply:
		result, err = checked(left.Mul(right.Decimal))
	case Divide:
		if right.Decimal.IsZero() {
			return decimal.Zero, overflowError()
		}
		result, err = checked(left.DivRound(right.Decimal, MaxScale))
	case Power:
		result, err = power(left, right.Decimal)
		if err == nil {
			result = result.Round(PowerFractionDigits)
		}
	case NaturalLog:
		result, err = naturalLog(left)
	case Sine:
		x := reduceAngle(left)
		result, err = checked(trigSeries(x, x, 1))
	case Cosine:
		result, err = checked(trigSeries(one, reduceAngle(left), 0))
	default:
		return decimal.Zero, &Error{Kind: IncorrectOperation, Operator: o, Message: "Unknown operator"}
	}
	if err != nil {
		return decimal.Zero, err
	}

	if err := validResult(result); err != nil {
		return decimal.Zero, err
	}
	return normalize(result), nil
}

// validResult rejects values whose integer part does not fit the buffer
func validResult(result decimal.Decimal) error {
	if result.Truncate(0).Abs().GreaterThan(MaxMagnitude) {
		return outOfBufferRangeError(result)
	}
	return nil
}

// checked emulates fixed-width decimal arithmetic: the scale is capped at
// MaxScale and magnitudes beyond the decimal ceiling overflow.
func checked(d decimal.Decimal) (decimal.Decimal, error) {
	if d.Abs().GreaterThan(decimalCeiling) {
		return decimal.Zero, overflowError()
	}
	return d.Round(MaxScale), nil
}

func naturalLog(d decimal.Decimal) (decimal.Decimal, error) {
	if !d.IsPositive() {
		return decimal.Zero, overflowError()
	}
	ln, err := d.Ln(MaxScale)
	if err != nil {
		return decimal.Zero, &Error{Kind: Overflow, Operator: NaturalLog, Err: err}
	}
	return checked(ln)
}

// reduceAngle maps x into [-π, π]
func reduceAngle(x decimal.Decimal) decimal.Decimal {
	_, r := x.QuoRem(fullTurn, 0)
	switch {
	case r.GreaterThan(halfTurn):
		r = r.Sub(fullTurn)
	case r.LessThan(halfTurn.Neg()):
		r = r.Add(fullTurn)
	}
	return r.Round(trigScale)
}

// trigSeries sums the alternating Taylor series whose first term is x^k/k!.
// k = 1 gives sin(x), k = 0 with a first term of one gives cos(x).
func trigSeries(term, x decimal.Decimal, k int64) decimal.Decimal {
	x2 := x.Mul(x).Round(trigScale)
	sum := term
	for term.Abs().GreaterThanOrEqual(trigEpsilon) {
		term = term.Mul(x2).Neg().DivRound(decimal.NewFromInt((k+1)*(k+2)), trigScale)
		sum = sum.Add(term)
		k += 2
	}
	return sum
}

func power(base, exponent decimal.Decimal) (decimal.Decimal, error) {
	if exponent.IsInteger() {
		return integerPower(base, exponent)
	}
	if !base.IsPositive() {
		return decimal.Zero, overflowError()
	}
	return logPower(base, exponent)
}

func integerPower(base, exponent decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case exponent.IsZero():
		return one, nil
	case base.IsZero():
		if exponent.IsNegative() {
			return decimal.Zero, overflowError()
		}
		return decimal.Zero, nil
	case base.Abs().Equal(one):
		if base.IsPositive() || isEven(exponent) {
			return one, nil
		}
		return one.Neg(), nil
	}
	if exponent.LessThan(minInt32) || exponent.GreaterThan(maxInt32) {
		return decimal.Zero, overflowError()
	}

	n := exponent.IntPart()
	magnitude, _ := base.Abs().Float64()
	estimate := float64(n) * math.Log10(magnitude)
	if estimate > float64(MaxScale+1) {
		return decimal.Zero, overflowError()
	}
	if estimate < -float64(MaxScale+2) {
		return decimal.Zero, nil
	}

	absN := n
	if absN < 0 {
		absN = -absN
	}
	if fractionDigits(base)*absN > exactPowerDigits {
		result, err := logPower(base.Abs(), exponent)
		if err != nil {
			return decimal.Zero, err
		}
		if base.IsNegative() && !isEven(exponent) {
			result = result.Neg()
		}
		return result, nil
	}

	raised, err := base.PowInt32(int32(absN))
	if err != nil {
		return decimal.Zero, &Error{Kind: Overflow, Operator: Power, Err: err}
	}
	if n < 0 {
		if raised.IsZero() {
			return decimal.Zero, overflowError()
		}
		raised = one.DivRound(raised, MaxScale)
	}
	return checked(raised)
}

// logPower computes base^exponent as exp(exponent * ln(base)) for a positive base
func logPower(base, exponent decimal.Decimal) (decimal.Decimal, error) {
	ln, err := base.Ln(MaxScale)
	if err != nil {
		return decimal.Zero, &Error{Kind: Overflow, Operator: Power, Err: err}
	}
	product := exponent.Mul(ln)
	if product.GreaterThan(expCeiling) {
		return decimal.Zero, overflowError()
	}
	if product.LessThan(expFloor) {
		return decimal.Zero, nil
	}
	result, err := product.Round(MaxScale).ExpTaylor(MaxScale)
	if err != nil {
		return decimal.Zero, &Error{Kind: OperationFailure, Operator: Power, Message: err.Error(), Err: err}
	}
	return checked(result)
}

func isEven(d decimal.Decimal) bool {
	return d.Mod(decimal.NewFromInt(2)).IsZero()
}

func fractionDigits(d decimal.Decimal) int64 {
	if exp := d.Exponent(); exp < 0 {
		return int64(-exp)
	}
	return 0
}

// normalize trims trailing zero fractional digits from the coefficient
func normalize(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	exp := d.Exponent()
	if exp >= 0 {
		return d
	}
	coef := d.Coefficient()
	ten := big.NewInt(10)
	quo, rem := new(big.Int), new(big.Int)
	for exp < 0 {
		quo.QuoRem(coef, ten, rem)
		if rem.Sign() != 0 {
			break
		}
		coef.Set(quo)
		exp++
	}
	return decimal.NewFromBigInt(coef, exp)
}
