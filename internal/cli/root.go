package cli

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/securestore/internal/common"
	"github.com/dmitrijs2005/securestore/internal/config"
	"github.com/dmitrijs2005/securestore/internal/logging"
	"github.com/spf13/cobra"
)

// annotationNoApp marks commands that run without opening the store.
const annotationNoApp = "securestore.no-app"

var (
	ErrNotFound        = errors.New("not found")
	errEmptyPassphrase = errors.New("passphrase must not be empty")
)

// state is shared by all commands of one tree.
type state struct {
	app        *App
	owned      bool
	passphrase string
}

// Execute builds the command tree, runs it with args and closes whatever it
// opened.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	root, st := newRootCmd(nil)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if cerr := st.shutdown(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// newRootCmd builds the command tree. With shared set, commands operate on
// that App and configuration flags are not registered.
func newRootCmd(shared *App) (*cobra.Command, *state) {
	st := &state{app: shared}

	root := &cobra.Command{
		Use:               "securestore",
		Short:             "Local encrypted key-value store with integrity checks and expiring sessions",
		SilenceUsage:      true,
		PersistentPreRunE: st.open,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	if shared == nil {
		pf := root.PersistentFlags()
		config.RegisterFlags(pf)
		pf.StringVarP(&st.passphrase, "passphrase", "p", "", "vault passphrase (prompted when encryption is on and this is empty)")
	}

	root.AddCommand(
		setCmd(st), getCmd(st), hasCmd(st), deleteCmd(st),
		loginCmd(st), sessionCmd(st), logoutCmd(st),
		paymentCmd(st), settingsCmd(st), biometricCmd(st),
		statusCmd(st), wipeCmd(st), versionCmd(),
	)
	if shared == nil {
		root.AddCommand(shellCmd(st))
	}
	return root, st
}

func (st *state) open(cmd *cobra.Command, _ []string) error {
	if st.app != nil || !needsApp(cmd) {
		return nil
	}

	cfg, err := config.LoadConfig(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	var pass []byte
	if cfg.Encrypt {
		if pass, err = st.readPassphrase(cmd); err != nil {
			return err
		}
		defer common.WipeByteArray(pass)
	}

	app, err := NewApp(cmd.Context(), cfg, logger, pass)
	if err != nil {
		return err
	}
	st.app, st.owned = app, true
	return nil
}

func (st *state) readPassphrase(cmd *cobra.Command) ([]byte, error) {
	if st.passphrase != "" {
		return []byte(st.passphrase), nil
	}
	pass, err := GetPassphrase(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	if len(pass) == 0 {
		return nil, errEmptyPassphrase
	}
	return pass, nil
}

func (st *state) shutdown() error {
	if !st.owned || st.app == nil {
		return nil
	}
	err := st.app.Close()
	st.app, st.owned = nil, false
	return err
}

func needsApp(cmd *cobra.Command) bool {
	if cmd.Name() == "help" {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoApp] == "true" {
			return false
		}
	}
	return true
}
