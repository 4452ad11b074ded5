package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/securestore/internal/securestore"
	"github.com/spf13/cobra"
)

var errRawCardNumber = errors.New("value looks like a card number; store the processor token instead")

func paymentCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Manage the tokenized payment method",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "store <token>",
			Short: "Store a payment processor token",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if looksLikePAN(args[0]) {
					return errRawCardNumber
				}
				return st.app.store.StorePaymentToken(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the stored payment token",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				tok, ok := st.app.store.GetPaymentToken(cmd.Context())
				if !ok {
					return fmt.Errorf("payment token: %w", ErrNotFound)
				}
				fmt.Fprintln(cmd.OutOrStdout(), tok)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the stored payment token",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return st.app.store.DeleteItem(cmd.Context(), securestore.KeyPaymentToken)
			},
		},
	)
	return cmd
}

// looksLikePAN reports whether s is 13 to 19 digits (spaces and dashes
// allowed) passing the Luhn check.
func looksLikePAN(s string) bool {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)

	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
