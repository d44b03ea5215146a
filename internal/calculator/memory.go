package calculator

import (
	"github.com/shopspring/decimal"
)

// Memory returns the value of the memory cell
func (c *Calculator) Memory() decimal.Decimal {
	return c.memory
}

// MemoryAdd adds the displayed value to memory
func (c *Calculator) MemoryAdd() error {
	return c.memoryApply(Add)
}

// MemorySub subtracts the displayed value from memory
func (c *Calculator) MemorySub() error {
	return c.memoryApply(Subtract)
}

func (c *Calculator) memoryApply(op Operator) error {
	current, err := c.CurrentValue()
	if err != nil {
		return err
	}
	value, err := op.Apply(c.memory, decimal.NewNullDecimal(current))
	if err != nil {
		return err
	}
	c.memory = value
	return nil
}

// MemoryRecallOrClear behaves like the MRC key: when the display already
// shows the memory value the memory is cleared, otherwise the memory value
// is placed in the active operand slot.
func (c *Calculator) MemoryRecallOrClear() error {
	current, err := c.CurrentValue()
	if err != nil {
		return err
	}
	if current.Equal(c.memory) {
		c.memory = decimal.Zero
		return nil
	}
	return c.SetCurrentOperand(c.memory)
}
