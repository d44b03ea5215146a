package main

import (
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/spf13/cobra"
)

func newEvalCmd(logLevel *string) *cobra.Command {
	var panel bool

	cmd := &cobra.Command{
		Use:   "eval KEYS...",
		Short: "Press keys on a fresh calculator and print the display",
		Long: "Press keys on a fresh calculator and print the display.\n\n" +
			"Each argument is either a run of calculator keys (digits . , + - * / ^ =) or one of the\n" +
			"named commands ln, sin, cos, pi, e, %, m+, m-, mrc, ce and c.",
		Example: "  calc-mcp eval 2+3*4=\n  calc-mcp eval 9 ln\n  calc-mcp eval 200+10 %",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(quietLevel(*logLevel)); err != nil {
				return err
			}

			s := session.New("eval", false)
			snap := s.Snapshot()
			for _, arg := range args {
				var err error
				if action, ok := keypad.Command(arg); ok {
					snap, err = s.Do(action.Apply)
				} else {
					snap, err = s.PressKeys(arg)
				}
				if err != nil {
					return fmt.Errorf("failed to evaluate %q: %w", arg, err)
				}
			}

			if panel {
				fmt.Fprintln(cmd.OutOrStdout(), snap.Panel.Line())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), snap.Display)
			}
			return nil
		},
	}

	// Keys such as "-3=" after the first argument are not flags
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&panel, "panel", false, "Print the full panel line with indicators")
	return cmd
}
