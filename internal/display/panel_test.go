package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanelLine(t *testing.T) {
	tests := []struct {
		name     string
		panel    Panel
		expected string
	}{
		{
			name:     "Empty panel",
			panel:    Panel{},
			expected: "   " + strings.Repeat(" ", Width-1) + "0",
		},
		{
			name:     "Operand is right aligned",
			panel:    Panel{Operand: "123"},
			expected: "   " + strings.Repeat(" ", Width-3) + "123",
		},
		{
			name:     "Memory indicator",
			panel:    Panel{Memory: true, Operand: "-4.5"},
			expected: " M " + strings.Repeat(" ", Width-4) + "-4.5",
		},
		{
			name:     "Error shows zero",
			panel:    Panel{Error: true, Operand: "42"},
			expected: "e  " + strings.Repeat(" ", Width-1) + "0",
		},
		{
			name:     "Both indicators",
			panel:    Panel{Error: true, Memory: true, Operand: "7"},
			expected: "eM " + strings.Repeat(" ", Width-1) + "0",
		},
		{
			name:     "Full display",
			panel:    Panel{Operand: "-1234567890.123456"},
			expected: "   -1234567890.123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := tt.panel.Line()
			assert.Equal(t, tt.expected, line)
			assert.Len(t, line, indicatorCells+Width)
			assert.Equal(t, line, tt.panel.String())
		})
	}
}
