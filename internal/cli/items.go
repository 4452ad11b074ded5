package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func setCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value...>",
		Short: "Store a value under key",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.app.store.SetItem(cmd.Context(), args[0], strings.Join(args[1:], " "))
		},
	}
}

func getCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := st.app.store.GetItem(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("%s: %w", args[0], ErrNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func hasCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "has <key>",
		Short: "Report whether a valid value is stored under key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), st.app.store.HasItem(cmd.Context(), args[0]))
			return nil
		},
	}
}

func deleteCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <key>",
		Aliases: []string{"rm"},
		Short:   "Remove key; removing a missing key is not an error",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.app.store.DeleteItem(cmd.Context(), args[0])
		},
	}
}
