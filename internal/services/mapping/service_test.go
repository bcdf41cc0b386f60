package mapping_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usermap/internal/domain"
	"usermap/internal/services/mapping"
	"usermap/internal/store"
)

func TestService_SetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usermap.json")
	opts := store.Options{Mode: domain.ModeNicks}

	svc := mapping.New(store.Open(path, opts))
	require.NoError(t, svc.Set("alice!ident@example.net", "acct-1"))

	// Set flushes, so a fresh store sees the entry without an explicit
	// flush from the caller.
	reopened := store.Open(path, opts)
	id, ok, err := reopened.Get("alice!ident@example.net")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.AccountID("acct-1"), id)
}

func TestService_AssignIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usermap.json")
	svc := mapping.New(store.Open(path, store.Options{Mode: domain.ModeNicks}))

	first, err := svc.Assign("alice!ident@example.net")
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := svc.Assign("Alice!other@elsewhere.org")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestService_AssignInvalidPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usermap.json")
	svc := mapping.New(store.Open(path, store.Options{Mode: domain.ModeNicks}))

	_, err := svc.Assign("no separator")
	assert.ErrorIs(t, err, domain.ErrInvalidPrefix)
}
