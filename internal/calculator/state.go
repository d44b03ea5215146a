package calculator

// State is the interaction protocol of the calculator. Exactly one of
// ReadingLeftOrOperator, ReadingRight, ReadingRightOrNextAction or Result
// is live at a time and owns its operands.
type State interface {
	// Kind returns the snake_case name of the state
	Kind() string

	// Current returns the operand shown on the display
	Current() Operand

	isState()
}

// ReadingLeftOrOperator builds or holds the left operand; no operator is chosen yet.
type ReadingLeftOrOperator struct {
	Left Operand
}

// ReadingRight holds a finalized left operand and a pending operator.
type ReadingRight struct {
	Left     Operand
	Operator Operator
}

// ReadingRightOrNextAction builds the right operand of a pending operation.
type ReadingRightOrNextAction struct {
	Left     Operand
	Operator Operator
	Right    Operand
}

// Result shows a computed or recalled value.
type Result struct {
	Value Operand
}

func (ReadingLeftOrOperator) Kind() string    { return "reading_left_or_operator" }
func (ReadingRight) Kind() string             { return "reading_right" }
func (ReadingRightOrNextAction) Kind() string { return "reading_right_or_next_action" }
func (Result) Kind() string                   { return "result" }

func (s ReadingLeftOrOperator) Current() Operand    { return s.Left }
func (s ReadingRight) Current() Operand             { return s.Left }
func (s ReadingRightOrNextAction) Current() Operand { return s.Right }
func (s Result) Current() Operand                   { return s.Value }

func (ReadingLeftOrOperator) isState()    {}
func (ReadingRight) isState()             {}
func (ReadingRightOrNextAction) isState() {}
func (Result) isState()                   {}

// begin is the initial state: an empty left operand
func begin() State {
	return ReadingLeftOrOperator{Left: NewOperand()}
}

// PendingOperator returns the operator waiting for a right operand, if any
func PendingOperator(s State) (Operator, bool) {
	switch s := s.(type) {
	case ReadingRight:
		return s.Operator, true
	case ReadingRightOrNextAction:
		return s.Operator, true
	default:
		return 0, false
	}
}

// withReset returns op with its reset-on-clear flag set to value
func withReset(op Operand, value bool) Operand {
	op.setResetOnClear(value)
	return op
}
