package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usermap/internal/domain"
	"usermap/internal/store"
)

func TestSealedCodec_RoundTrip(t *testing.T) {
	codec := store.SealedCodec{Passphrase: "correct horse"}
	in := map[string]domain.AccountID{
		"alice": "acct-1",
		"bob":   "acct-2",
	}

	blob, err := codec.Encode(in)
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "acct-1")

	out, err := codec.Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSealedCodec_WrongPassphrase(t *testing.T) {
	blob, err := store.SealedCodec{Passphrase: "correct"}.Encode(
		map[string]domain.AccountID{"alice": "acct-1"})
	require.NoError(t, err)

	_, err = store.SealedCodec{Passphrase: "wrong"}.Decode(blob)
	assert.Error(t, err)
}

func TestOpen_SealedStore(t *testing.T) {
	path := dbPath(t)
	opts := store.Options{
		Mode:  domain.ModeNicks,
		Codec: store.SealedCodec{Passphrase: "correct horse"},
	}

	db := store.Open(path, opts)
	require.NoError(t, db.Set("alice!ident@example.net", "acct-1"))
	db.Flush()

	reopened := store.Open(path, opts)
	id, ok, err := reopened.Get("alice!ident@example.net")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.AccountID("acct-1"), id)

	// A wrong passphrase is a load failure; the store recovers empty.
	locked := store.Open(path, store.Options{
		Mode:  domain.ModeNicks,
		Codec: store.SealedCodec{Passphrase: "wrong"},
	})
	assert.Equal(t, 0, locked.Len())
}
