package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/securestore/internal/buildinfo"
	"github.com/spf13/cobra"
)

var errNotConfirmed = errors.New("wipe not confirmed")

func statusCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the startup decision: logged_out, biometric_required or authenticated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), st.app.store.AuthStatus(cmd.Context()))
			return nil
		},
	}
}

func wipeCmd(st *state) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Remove the session, payment token, biometric flag and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				answer, err := GetSimpleText(bufio.NewReader(cmd.InOrStdin()),
					"This removes all account data from this device. Type 'yes' to continue.", cmd.OutOrStdout())
				if err != nil || !strings.EqualFold(answer, "yes") {
					return errNotConfirmed
				}
			}
			if err := st.app.store.ClearAllData(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoApp: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}
