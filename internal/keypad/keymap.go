// Package keypad maps keyboard input onto calculator commands.
package keypad

import (
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// Kind identifies a calculator command
type Kind int

const (
	KindSymbol Kind = iota + 1
	KindOperator
	KindErase
	KindEraseAll
	KindPercentage
	KindPi
	KindEulersNumber
	KindMemoryAdd
	KindMemorySub
	KindMemoryRecall
	KindQuit
)

// Control characters delivered by a terminal in raw mode
const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyBackspace = 0x08
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// Action is one command bound to a key
type Action struct {
	Kind     Kind
	Symbol   rune
	Operator calculator.Operator
}

var keyActions = map[rune]Action{
	'\r':         {Kind: KindSymbol, Symbol: '='},
	'\n':         {Kind: KindSymbol, Symbol: '='},
	keyBackspace: {Kind: KindErase},
	keyDelete:    {Kind: KindErase},
	keyEscape:    {Kind: KindEraseAll},
	'%':          {Kind: KindPercentage},
	'l':          {Kind: KindOperator, Operator: calculator.NaturalLog},
	's':          {Kind: KindOperator, Operator: calculator.Sine},
	'c':          {Kind: KindOperator, Operator: calculator.Cosine},
	'p':          {Kind: KindPi},
	'e':          {Kind: KindEulersNumber},
	'm':          {Kind: KindMemoryAdd},
	'n':          {Kind: KindMemorySub},
	'r':          {Kind: KindMemoryRecall},
	'q':          {Kind: KindQuit},
	keyCtrlC:     {Kind: KindQuit},
	keyCtrlD:     {Kind: KindQuit},
}

var commandActions = map[string]Action{
	"ln":  {Kind: KindOperator, Operator: calculator.NaturalLog},
	"sin": {Kind: KindOperator, Operator: calculator.Sine},
	"cos": {Kind: KindOperator, Operator: calculator.Cosine},
	"pi":  {Kind: KindPi},
	"e":   {Kind: KindEulersNumber},
	"%":   {Kind: KindPercentage},
	"m+":  {Kind: KindMemoryAdd},
	"m-":  {Kind: KindMemorySub},
	"mrc": {Kind: KindMemoryRecall},
	"ce":  {Kind: KindErase},
	"c":   {Kind: KindEraseAll},
}

// Lookup returns the action bound to a keyboard character
func Lookup(r rune) (Action, bool) {
	if calculator.IsInputSymbol(r) {
		return Action{Kind: KindSymbol, Symbol: r}, true
	}
	action, ok := keyActions[r]
	return action, ok
}

// Command returns the action for a named command such as "sin" or "mrc"
func Command(name string) (Action, bool) {
	action, ok := commandActions[strings.ToLower(strings.TrimSpace(name))]
	return action, ok
}

// Apply runs the action against a calculator
func (a Action) Apply(c *calculator.Calculator) error {
	switch a.Kind {
	case KindSymbol:
		return c.SymbolIn(a.Symbol)
	case KindOperator:
		return c.OperatorIn(a.Operator)
	case KindErase:
		c.Erase()
	case KindEraseAll:
		c.EraseAll()
	case KindPercentage:
		return c.Percentage()
	case KindPi:
		c.Pi()
	case KindEulersNumber:
		c.EulersNumber()
	case KindMemoryAdd:
		return c.MemoryAdd()
	case KindMemorySub:
		return c.MemorySub()
	case KindMemoryRecall:
		return c.MemoryRecallOrClear()
	}
	return nil
}
