package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func settingsCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage application settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <key=value>...",
			Short: "Set settings; values are parsed as JSON when possible",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				settings := st.loadSettings(cmd)
				for _, arg := range args {
					k, v, ok := strings.Cut(arg, "=")
					if !ok || k == "" {
						return fmt.Errorf("invalid setting %q, expected key=value", arg)
					}
					settings[k] = parseSettingValue(v)
				}
				return st.app.store.StoreAppSettings(cmd.Context(), settings)
			},
		},
		&cobra.Command{
			Use:   "unset <key>...",
			Short: "Remove settings",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				settings := st.loadSettings(cmd)
				for _, k := range args {
					delete(settings, k)
				}
				return st.app.store.StoreAppSettings(cmd.Context(), settings)
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print settings as JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				b, err := json.MarshalIndent(st.loadSettings(cmd), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			},
		},
	)
	return cmd
}

// loadSettings returns the stored settings object, or an empty one.
func (st *state) loadSettings(cmd *cobra.Command) map[string]any {
	var settings map[string]any
	if !st.app.store.GetAppSettings(cmd.Context(), &settings) || settings == nil {
		settings = map[string]any{}
	}
	return settings
}

func parseSettingValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}

func biometricCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:       "biometric [on|off]",
		Short:     "Show or change whether biometric confirmation is required",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				if err := st.app.store.SetBiometricEnabled(ctx, args[0] == "on"); err != nil {
					return err
				}
			}
			mode := "off"
			if st.app.store.BiometricEnabled(ctx) {
				mode = "on"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Biometric confirmation: %s\n", mode)
			return nil
		},
	}
}
