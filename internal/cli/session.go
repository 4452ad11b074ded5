package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/dmitrijs2005/securestore/internal/tokeninfo"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const profileAccessToken = "access_token"

var errNoSession = errors.New("no active session")

func loginCmd(st *state) *cobra.Command {
	var (
		id, name, email, token string
		fields                 map[string]string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a user session from the given profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if token != "" {
				if _, err := tokeninfo.Inspect(token); err != nil {
					return err
				}
			}

			profile := make(map[string]any, len(fields)+4)
			for k, v := range fields {
				profile[k] = v
			}
			if id == "" {
				id = uuid.NewString()
			}
			profile["id"] = id
			if name != "" {
				profile["name"] = name
			}
			if email != "" {
				profile["email"] = email
			}
			if token != "" {
				profile[profileAccessToken] = token
			}

			sess, err := st.app.store.StoreUserSession(cmd.Context(), profile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\nSession: %s\n", sess.UserID(), sess.SessionID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&id, "id", "", "user id (a random UUID when empty)")
	f.StringVar(&name, "name", "", "display name")
	f.StringVar(&email, "email", "", "email address")
	f.StringVar(&token, "token", "", "backend access token (JWT) to cache with the session")
	f.StringToStringVarP(&fields, "field", "f", nil, "extra profile fields as key=value")
	return cmd
}

func sessionCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the current user session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, ok := st.app.store.GetUserSession(cmd.Context())
			if !ok {
				return errNoSession
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "User: %s\n", sess.UserID())
			fmt.Fprintf(w, "Session: %s\n", sess.SessionID)
			fmt.Fprintf(w, "Logged in: %s\n", sess.LoginAt().Format(time.RFC3339))
			fmt.Fprintf(w, "Expires: %s\n", sess.LoginAt().Add(st.app.config.SessionTTL).Format(time.RFC3339))

			for _, k := range slices.Sorted(maps.Keys(sess.Profile)) {
				if k == "id" || k == profileAccessToken {
					continue
				}
				fmt.Fprintf(w, "  %s: %v\n", k, sess.Profile[k])
			}

			if tok, _ := sess.Profile[profileAccessToken].(string); tok != "" {
				printTokenInfo(w, tok, time.Now())
			}
			return nil
		},
	}
}

func printTokenInfo(w io.Writer, token string, now time.Time) {
	info, err := tokeninfo.Inspect(token)
	if err != nil {
		fmt.Fprintf(w, "Access token: unreadable (%v)\n", err)
		return
	}

	fmt.Fprintf(w, "Access token subject: %s\n", info.Subject)
	switch {
	case info.ExpiresAt.IsZero():
		fmt.Fprintln(w, "Access token expires: never")
	case info.Expired(now):
		fmt.Fprintf(w, "Access token expired: %s\n", info.ExpiresAt.Format(time.RFC3339))
	default:
		fmt.Fprintf(w, "Access token expires: %s\n", info.ExpiresAt.Format(time.RFC3339))
	}
}

func logoutCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current user session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := st.app.store.ClearUserSession(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
