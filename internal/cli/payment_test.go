package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikePAN(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"4111111111111111", true},
		{"4111 1111 1111 1111", true},
		{"4111-1111-1111-1111", true},
		{"378282246310005", true},
		{"4111111111111112", false},
		{"411111111111", false},
		{"41111111111111111111", false},
		{"tok_1Nv0aB2eZvKYlo2C", false},
		{"4111a11111111111", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikePAN(tt.in))
		})
	}
}

func TestPaymentCommands(t *testing.T) {
	app := newTestApp(t)

	_, err := run(t, app, "", "payment", "show")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = run(t, app, "", "payment", "store", "4111111111111111")
	assert.ErrorIs(t, err, errRawCardNumber)
	_, ok := app.Store().GetPaymentToken(t.Context())
	assert.False(t, ok, "card number must not be stored")

	_, err = run(t, app, "", "payment", "store", "tok_visa_4242")
	require.NoError(t, err)

	out, err := run(t, app, "", "payment", "show")
	require.NoError(t, err)
	assert.Equal(t, "tok_visa_4242\n", out)

	_, err = run(t, app, "", "payment", "clear")
	require.NoError(t, err)
	_, err = run(t, app, "", "payment", "show")
	assert.ErrorIs(t, err, ErrNotFound)
}
