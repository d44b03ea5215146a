package results

// StateKind represents the calculator input state as an enum
type StateKind string

const (
	StateKindReadingLeftOrOperator    StateKind = "reading_left_or_operator"
	StateKindReadingRight             StateKind = "reading_right"
	StateKindReadingRightOrNextAction StateKind = "reading_right_or_next_action"
	StateKindResult                   StateKind = "result"
	StateKindUnknown                  StateKind = "unknown"
)

var stateKindMap = map[string]StateKind{
	"reading_left_or_operator":     StateKindReadingLeftOrOperator,
	"reading_right":                StateKindReadingRight,
	"reading_right_or_next_action": StateKindReadingRightOrNextAction,
	"result":                       StateKindResult,
}

// NewStateKind returns the StateKind for a calculator state name
func NewStateKind(kind string) StateKind {
	stateKind, ok := stateKindMap[kind]
	if !ok {
		return StateKindUnknown
	}
	return stateKind
}
