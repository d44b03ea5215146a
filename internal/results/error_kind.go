package results

import (
	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// ErrorKind represents a calculator failure as an enum
type ErrorKind string

const (
	ErrorKindOperationFailure   ErrorKind = "operation_failure"
	ErrorKindOutOfBufferRange   ErrorKind = "out_of_buffer_range"
	ErrorKindIncorrectOperation ErrorKind = "incorrect_operation"
	ErrorKindIncorrectOperand   ErrorKind = "incorrect_operand"
	ErrorKindOperandIsMissing   ErrorKind = "operand_is_missing"
	ErrorKindParsingFailure     ErrorKind = "parsing_failure"
	ErrorKindOverflow           ErrorKind = "overflow"
	ErrorKindUnknown            ErrorKind = "unknown"
)

var errorKindMap = map[calculator.ErrorKind]ErrorKind{
	calculator.OperationFailure:   ErrorKindOperationFailure,
	calculator.OutOfBufferRange:   ErrorKindOutOfBufferRange,
	calculator.IncorrectOperation: ErrorKindIncorrectOperation,
	calculator.IncorrectOperand:   ErrorKindIncorrectOperand,
	calculator.OperandIsMissing:   ErrorKindOperandIsMissing,
	calculator.ParsingFailure:     ErrorKindParsingFailure,
	calculator.Overflow:           ErrorKindOverflow,
}

// NewErrorKind returns the ErrorKind of a calculator error.
// It returns the empty kind for a nil error.
func NewErrorKind(err error) ErrorKind {
	if err == nil {
		return ""
	}
	errorKind, ok := errorKindMap[calculator.KindOf(err)]
	if !ok {
		return ErrorKindUnknown
	}
	return errorKind
}
