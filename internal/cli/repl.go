package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// execFn runs one tokenized command line.
type execFn func(ctx context.Context, args []string) error

func shellCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively against one opened store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			exec := func(ctx context.Context, args []string) error {
				child, _ := newRootCmd(st.app)
				child.SetArgs(args)
				child.SetIn(in)
				child.SetOut(out)
				child.SetErr(out)
				child.SilenceErrors = true
				return child.ExecuteContext(ctx)
			}
			status := func() string {
				return st.app.store.AuthStatus(cmd.Context()).String()
			}

			runREPL(cmd.Context(), in, out, status, exec)
			return nil
		},
	}
}

// runREPL is a read–eval–print loop over r.
//
// Each non-empty line is split on whitespace and handed to exec, which runs
// it as a regular securestore command ("help" included). Errors are printed
// and the loop continues. It returns on EOF, on "exit" or "quit", or when
// ctx is cancelled.
func runREPL(ctx context.Context, r *bufio.Reader, w io.Writer, statusFn func() string, exec execFn) {
	fmt.Fprintln(w, "securestore shell (type 'help' for commands, 'exit' to leave)")
	for ctx.Err() == nil {
		fmt.Fprintf(w, "securestore (%s)> ", statusFn())

		line, readErr := r.ReadString('\n')
		parts := strings.Fields(line)

		switch {
		case len(parts) == 0:
		case parts[0] == "exit" || parts[0] == "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			if err := exec(ctx, parts); err != nil {
				fmt.Fprintln(w, "Error:", err)
			}
		}

		if readErr != nil {
			fmt.Fprintln(w)
			return
		}
	}
}
