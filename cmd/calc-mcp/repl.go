package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const replHelp = "digits . , + - * / ^ =  |  %% percent  l ln  s sin  c cos  p pi  e e\r\n" +
	"m M+  n M-  r MRC  |  backspace erase  esc clear  |  q quit\r\n"

func newReplCmd(logLevel *string) *cobra.Command {
	var resetOnError bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Use the calculator interactively from the keyboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(quietLevel(*logLevel)); err != nil {
				return err
			}

			fd := int(os.Stdin.Fd())
			if term.IsTerminal(fd) {
				state, err := term.MakeRaw(fd)
				if err != nil {
					return fmt.Errorf("failed to enable raw mode: %w", err)
				}
				defer term.Restore(fd, state)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, replHelp)

			repl := keypad.NewREPL(session.New("repl", resetOnError), out)
			if err := repl.Run(ctx, cmd.InOrStdin()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&resetOnError, "reset-on-error", true, "Clear the calculator after a failed command")
	return cmd
}
