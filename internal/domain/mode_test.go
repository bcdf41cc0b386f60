package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usermap/internal/domain"
)

func TestParseMode(t *testing.T) {
	testCases := []struct {
		in   string
		want domain.Mode
		err  bool
	}{
		{in: "accounts", want: domain.ModeAccounts},
		{in: "identhost", want: domain.ModeIdentHost},
		{in: "nicks", want: domain.ModeNicks},
		{in: "", err: true},
		{in: "Accounts", err: true},
		{in: "hostmask", err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseMode(tc.in)
			if tc.err {
				assert.ErrorIs(t, err, domain.ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.in, got.String())
		})
	}
}

func TestSplitPrefix(t *testing.T) {
	nick, identHost, err := domain.SplitPrefix("alice!ident@example.net")
	require.NoError(t, err)
	assert.Equal(t, "alice", nick)
	assert.Equal(t, "ident@example.net", identHost)

	_, _, err = domain.SplitPrefix("alice@example.net")
	assert.ErrorIs(t, err, domain.ErrInvalidPrefix)
}
