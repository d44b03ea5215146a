package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrorKind is the closed set of calculator failures
type ErrorKind int

const (
	OperationFailure ErrorKind = iota + 1
	OutOfBufferRange
	IncorrectOperation
	IncorrectOperand
	OperandIsMissing
	ParsingFailure
	Overflow
)

var errorKindNames = map[ErrorKind]string{
	OperationFailure:   "operation_failure",
	OutOfBufferRange:   "out_of_buffer_range",
	IncorrectOperation: "incorrect_operation",
	IncorrectOperand:   "incorrect_operand",
	OperandIsMissing:   "operand_is_missing",
	ParsingFailure:     "parsing_failure",
	Overflow:           "overflow",
}

// String returns the snake_case name of the kind
func (k ErrorKind) String() string {
	name, ok := errorKindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

// Error is a typed calculator failure. It carries the context needed to
// render a message but no recovery state.
type Error struct {
	Kind     ErrorKind
	Operator Operator
	Value    decimal.Decimal
	Message  string
	Err      error
}

// Sentinels for use with errors.Is; matching is by kind only.
var (
	ErrOperationFailure   = &Error{Kind: OperationFailure}
	ErrOutOfBufferRange   = &Error{Kind: OutOfBufferRange}
	ErrIncorrectOperation = &Error{Kind: IncorrectOperation}
	ErrIncorrectOperand   = &Error{Kind: IncorrectOperand}
	ErrOperandIsMissing   = &Error{Kind: OperandIsMissing}
	ErrParsingFailure     = &Error{Kind: ParsingFailure}
	ErrOverflow           = &Error{Kind: Overflow}
)

func (e *Error) Error() string {
	switch e.Kind {
	case OperationFailure:
		if e.Message == "" {
			return fmt.Sprintf("Operation %s failed", e.Operator)
		}
		return e.Message
	case OutOfBufferRange:
		return fmt.Sprintf("Number %s is out of buffer range", e.Value)
	case IncorrectOperation:
		if e.Message == "" {
			return "Incorrect operation symbol"
		}
		return e.Message
	case IncorrectOperand:
		if e.Message != "" {
			return fmt.Sprintf("Incorrect operand: %s", e.Message)
		}
		return fmt.Sprintf("Incorrect operand: %s", e.Value)
	case OperandIsMissing:
		return "Second operand is missing"
	case ParsingFailure:
		if e.Err != nil {
			return e.Err.Error()
		}
		if e.Message != "" {
			return e.Message
		}
		return "Parsing failure"
	case Overflow:
		return "Overflow"
	default:
		return "Unknown calculator error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a calculator error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of a calculator error, or zero if err is not one
func KindOf(err error) ErrorKind {
	var calcErr *Error
	if errors.As(err, &calcErr) {
		return calcErr.Kind
	}
	return 0
}

func overflowError() error {
	return &Error{Kind: Overflow}
}

func outOfBufferRangeError(value decimal.Decimal) error {
	return &Error{Kind: OutOfBufferRange, Value: value}
}

func incorrectOperandError(value decimal.Decimal) error {
	return &Error{Kind: IncorrectOperand, Value: value}
}

func incorrectOperationError(symbol rune) error {
	return &Error{Kind: IncorrectOperation, Message: fmt.Sprintf("Incorrect operation symbol %q", symbol)}
}

func parsingError(err error) error {
	return &Error{Kind: ParsingFailure, Err: err}
}
