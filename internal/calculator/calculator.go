// Package calculator implements the computational core of a desk calculator:
// a bounded operand buffer, checked decimal operators and the input state
// machine that turns keystrokes into results.
//
// A Calculator is not safe for concurrent use; callers serialize input.
package calculator

import (
	"github.com/shopspring/decimal"
)

const equalsSymbol = '='

// Constants placed on the display by Pi and EulersNumber
var (
	Pi = decimal.RequireFromString("3.1415926535897932384626433833")
	E  = decimal.RequireFromString("2.7182818284590452353602874714")

	piOperand = mustOperand(Pi)
	eOperand  = mustOperand(E)
)

// Calculator drives the operand buffers and operators from user input
type Calculator struct {
	state  State
	memory decimal.Decimal
}

// New returns a calculator reading an empty left operand, with zero in memory
func New() *Calculator {
	return &Calculator{
		state:  begin(),
		memory: decimal.Zero,
	}
}

// State returns the live state
func (c *Calculator) State() State {
	return c.state
}

// SymbolIn feeds one input character. Digits, '.' and ',' edit the active
// operand, '=' evaluates the pending operation and the operator characters
// / + - * ^ are routed to OperatorIn. On error the last committed state is kept.
func (c *Calculator) SymbolIn(symbol rune) error {
	if IsOperatorSymbol(symbol) {
		op, err := ParseOperator(symbol)
		if err != nil {
			return err
		}
		return c.OperatorIn(op)
	}
	if !IsInputSymbol(symbol) {
		return incorrectOperationError(symbol)
	}

	switch s := c.state.(type) {
	case ReadingLeftOrOperator:
		if symbol == equalsSymbol {
			return nil
		}
		left := s.Left.clone()
		if left.ResetOnClear() {
			left.SendErase()
		}
		left.SendSymbol(symbol)
		c.state = ReadingLeftOrOperator{Left: withReset(left, false)}

	case ReadingRight:
		if symbol == equalsSymbol {
			return nil
		}
		right := NewOperand()
		right.SendSymbol(symbol)
		c.state = ReadingRightOrNextAction{Left: s.Left, Operator: s.Operator, Right: right}

	case ReadingRightOrNextAction:
		if symbol == equalsSymbol {
			result, err := evaluate(s.Left, s.Operator, s.Right)
			if err != nil {
				return err
			}
			c.state = Result{Value: withReset(result, true)}
			return nil
		}
		right := s.Right.clone()
		if right.ResetOnClear() {
			right.SendErase()
		}
		right.SendSymbol(symbol)
		c.state = ReadingRightOrNextAction{Left: s.Left, Operator: s.Operator, Right: withReset(right, false)}

	case Result:
		if symbol == equalsSymbol {
			return nil
		}
		c.state = begin()
		return c.SymbolIn(symbol)
	}
	return nil
}

// IsInputSymbol reports whether SymbolIn accepts the character
func IsInputSymbol(symbol rune) bool {
	return isDigit(symbol) || isDot(symbol) || symbol == equalsSymbol || IsOperatorSymbol(symbol)
}

// ValidateKeys checks every character of keys without applying any of them
func ValidateKeys(keys string) error {
	for _, r := range keys {
		if !IsInputSymbol(r) {
			return incorrectOperationError(r)
		}
	}
	return nil
}

// Feed sends every character of keys through SymbolIn, stopping at the first error
func (c *Calculator) Feed(keys string) error {
	for _, r := range keys {
		if err := c.SymbolIn(r); err != nil {
			return err
		}
	}
	return nil
}

// OperatorIn feeds a structural operator. Unary operators consume the active
// operand immediately; binary operators open or chain a pending operation.
func (c *Calculator) OperatorIn(op Operator) error {
	if _, ok := operatorNames[op]; !ok {
		return &Error{Kind: IncorrectOperation, Operator: op, Message: "Unknown operator"}
	}

	switch s := c.state.(type) {
	case ReadingLeftOrOperator:
		if op.IsUnary() {
			return c.unaryToResult(op, s.Left)
		}
		c.state = ReadingRight{Left: s.Left, Operator: op}

	case ReadingRight:
		if op.IsUnary() {
			return c.unaryToResult(op, s.Left)
		}
		c.state = ReadingRight{Left: s.Left, Operator: op}

	case ReadingRightOrNextAction:
		if op.IsUnary() {
			result, err := applyUnary(op, s.Right)
			if err != nil {
				return err
			}
			c.state = ReadingRightOrNextAction{Left: s.Left, Operator: s.Operator, Right: withReset(result, true)}
			return nil
		}
		result, err := evaluate(s.Left, s.Operator, s.Right)
		if err != nil {
			return err
		}
		c.state = ReadingRight{Left: result, Operator: op}

	case Result:
		if op.IsUnary() {
			return c.unaryToResult(op, s.Value)
		}
		c.state = ReadingRight{Left: s.Value, Operator: op}
	}
	return nil
}

func (c *Calculator) unaryToResult(op Operator, operand Operand) error {
	result, err := applyUnary(op, operand)
	if err != nil {
		return err
	}
	c.state = Result{Value: withReset(result, true)}
	return nil
}

// CurrentOperand returns the operand shown on the display
func (c *Calculator) CurrentOperand() Operand {
	return c.state.Current()
}

// CurrentOperandString returns the display content
func (c *Calculator) CurrentOperandString() string {
	return c.state.Current().Display()
}

// CurrentValue returns the displayed operand as a decimal
func (c *Calculator) CurrentValue() (decimal.Decimal, error) {
	return c.state.Current().Decimal()
}

// SetCurrentOperand places value in the active operand slot, marked
// reset-on-clear. A value dropped into ReadingRight becomes its right operand.
func (c *Calculator) SetCurrentOperand(value decimal.Decimal) error {
	operand, err := OperandFromDecimal(value)
	if err != nil {
		return err
	}
	c.place(operand)
	return nil
}

func (c *Calculator) place(operand Operand) {
	operand = withReset(operand, true)
	switch s := c.state.(type) {
	case ReadingLeftOrOperator:
		c.state = ReadingLeftOrOperator{Left: operand}
	case ReadingRight:
		c.state = ReadingRightOrNextAction{Left: s.Left, Operator: s.Operator, Right: operand}
	case ReadingRightOrNextAction:
		c.state = ReadingRightOrNextAction{Left: s.Left, Operator: s.Operator, Right: operand}
	case Result:
		c.state = Result{Value: operand}
	}
}

// Pi places π in the active operand slot
func (c *Calculator) Pi() {
	c.place(piOperand)
}

// EulersNumber places e in the active operand slot
func (c *Calculator) EulersNumber() {
	c.place(eOperand)
}

// Percentage resolves a pending +, - or * against a percent right operand:
// the percent is left*right/100, added to or subtracted from left for + and -,
// and taken as is for *. Other states and operators are left untouched.
func (c *Calculator) Percentage() error {
	s, ok := c.state.(ReadingRightOrNextAction)
	if !ok {
		return nil
	}

	left, err := s.Left.Decimal()
	if err != nil {
		return err
	}
	right, err := s.Right.Decimal()
	if err != nil {
		return err
	}

	var value decimal.Decimal
	switch s.Operator {
	case Add, Subtract:
		percent, err := percentOf(left, right)
		if err != nil {
			return err
		}
		value, err = s.Operator.Apply(left, decimal.NewNullDecimal(percent))
		if err != nil {
			return err
		}
	case Multiply:
		percent, err := percentOf(left, right)
		if err != nil {
			return err
		}
		if err := validResult(percent); err != nil {
			return err
		}
		value = normalize(percent)
	default:
		return nil
	}

	result, err := OperandFromDecimal(value)
	if err != nil {
		return err
	}
	c.state = Result{Value: withReset(result, true)}
	return nil
}

// Erase deletes the last input of the active operand. A pending operator
// without a right operand, or a shown result, restarts the calculator.
func (c *Calculator) Erase() {
	switch s := c.state.(type) {
	case ReadingLeftOrOperator:
		left := s.Left.clone()
		left.SendErase()
		c.state = ReadingLeftOrOperator{Left: left}
	case ReadingRight:
		c.EraseAll()
	case ReadingRightOrNextAction:
		right := s.Right.clone()
		right.SendErase()
		c.state = ReadingRightOrNextAction{Left: s.Left, Operator: s.Operator, Right: right}
	case Result:
		c.EraseAll()
	}
}

// EraseAll restarts input; memory is kept
func (c *Calculator) EraseAll() {
	c.state = begin()
}

func percentOf(number, percent decimal.Decimal) (decimal.Decimal, error) {
	return checked(number.DivRound(hundred, MaxScale).Mul(percent))
}

func evaluate(left Operand, op Operator, right Operand) (Operand, error) {
	l, err := left.Decimal()
	if err != nil {
		return Operand{}, err
	}
	r, err := right.Decimal()
	if err != nil {
		return Operand{}, err
	}
	value, err := op.Apply(l, decimal.NewNullDecimal(r))
	if err != nil {
		return Operand{}, err
	}
	return OperandFromDecimal(value)
}

func applyUnary(op Operator, operand Operand) (Operand, error) {
	value, err := operand.Decimal()
	if err != nil {
		return Operand{}, err
	}
	result, err := op.Apply(value, decimal.NullDecimal{})
	if err != nil {
		return Operand{}, err
	}
	return OperandFromDecimal(result)
}

func mustOperand(value decimal.Decimal) Operand {
	operand, err := OperandFromDecimal(value)
	if err != nil {
		panic(err)
	}
	return operand
}
